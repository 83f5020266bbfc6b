package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/storage"
)

var exportGuildID string

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Consulta las policies guardadas",
}

var policiesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Imprime las policies como YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		db, err := openDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewChannelRepo(db)
		var ps []domain.ChannelPolicy
		if exportGuildID != "" {
			ps, err = repo.ListByGuild(cmd.Context(), exportGuildID)
		} else {
			ps, err = repo.ListAll(cmd.Context())
		}
		if err != nil {
			return err
		}
		return writePolicies(cmd.OutOrStdout(), ps)
	},
}

func init() {
	policiesExportCmd.Flags().StringVar(&exportGuildID, "guild", "", "sólo las policies de este guild")
	policiesCmd.AddCommand(policiesExportCmd)
}

type policiesDoc struct {
	Policies []domain.ChannelPolicy `yaml:"policies"`
}

func writePolicies(w io.Writer, ps []domain.ChannelPolicy) error {
	if ps == nil {
		ps = []domain.ChannelPolicy{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(policiesDoc{Policies: ps}); err != nil {
		return errors.Wrap(err, "encode policies")
	}
	return enc.Close()
}
