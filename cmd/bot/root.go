package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jose-valero/gravbits/internal/infra/config"
	"github.com/jose-valero/gravbits/internal/infra/logging"
	"github.com/jose-valero/gravbits/internal/infra/storage"
)

// Sin subcomando corre el bot (igual que `gravbits serve`).
var rootCmd = &cobra.Command{
	Use:   "gravbits",
	Short: "Gravbits - limpieza periódica de canales de Discord",
	Long: `Gravbits borra los mensajes viejos de los canales monitoreados
cada N horas y administra accesos por slash commands.`,
	SilenceUsage: true,
	RunE:         serveHandler,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(policiesCmd)
}

// bootstrap carga config + logger, común a todos los subcomandos.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFormat), nil
}

// openDB abre la base y aplica las migraciones pendientes.
func openDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sqlx.DB, error) {
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Msg("✅ DB lista y migrada")
	return db, nil
}
