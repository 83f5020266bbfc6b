package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	discordrouter "github.com/jose-valero/gravbits/internal/adapters/discord"
	"github.com/jose-valero/gravbits/internal/app/service"
	"github.com/jose-valero/gravbits/internal/domain"
)

var (
	sweepAgeHours int
	sweepNotify   bool
)

// Barrido único por REST, sin gateway ni timers.
var sweepCmd = &cobra.Command{
	Use:   "sweep <channel-id>",
	Short: "Barre un canal una vez y sale",
	Args:  cobra.ExactArgs(1),
	RunE:  sweepHandler,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepAgeHours, "age", domain.DefaultDeleteAgeHours, "borrar mensajes más viejos que N horas")
	sweepCmd.Flags().BoolVar(&sweepNotify, "notify", false, "publicar el resumen en el canal")
}

func sweepHandler(cmd *cobra.Command, args []string) error {
	if sweepAgeHours < 1 {
		return errors.Errorf("--age must be >= 1, got %d", sweepAgeHours)
	}
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return errors.Wrap(err, "discord session")
	}
	store := discordrouter.NewChannelStore(s)

	var notifier service.Notifier = quietNotifier{}
	if sweepNotify {
		notifier = store
	}
	sweeper := service.NewSweepService(store, notifier,
		rate.NewLimiter(rate.Every(cfg.SingleDeleteDelay), 1), log,
		service.WithNoticeTTL(cfg.NoticeTTL))

	res := sweeper.Sweep(cmd.Context(), args[0], sweepAgeHours)
	fmt.Fprintf(cmd.OutOrStdout(), "channel=%s deleted=%d bulk=%d single=%d pages=%d\n",
		res.ChannelID, res.DeletedCount, res.BulkDeleted, res.SingleDeleted, res.Pages)

	if sweepNotify && res.DeletedCount > 0 {
		// el aviso se borra solo; esperamos a que pase el TTL antes de salir
		time.Sleep(cfg.NoticeTTL + time.Second)
	}
	return nil
}

// quietNotifier descarta el resumen.
type quietNotifier struct{}

func (quietNotifier) Post(context.Context, string, string) (domain.MessageRecord, error) {
	return domain.MessageRecord{}, nil
}

func (quietNotifier) DeleteMessage(context.Context, string, string) error { return nil }
