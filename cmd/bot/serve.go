package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	discordrouter "github.com/jose-valero/gravbits/internal/adapters/discord"
	"github.com/jose-valero/gravbits/internal/adapters/httpstatus"
	"github.com/jose-valero/gravbits/internal/app/service"
	"github.com/jose-valero/gravbits/internal/infra/metrics"
	"github.com/jose-valero/gravbits/internal/infra/storage"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Conecta al gateway, arma los timers y expone /status",
	Args:  cobra.NoArgs,
	RunE:  serveHandler,
}

func serveHandler(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := openDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.New()

	// Discord session
	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return errors.Wrap(err, "discord session")
	}
	s.Identify.Intents = discordrouter.Intents

	store := discordrouter.NewChannelStore(s)

	// Services
	sweeper := service.NewSweepService(
		store, store,
		rate.NewLimiter(rate.Every(cfg.SingleDeleteDelay), 1),
		log,
		service.WithNoticeTTL(cfg.NoticeTTL),
		service.WithSweepMetrics(m),
	)
	sched := service.NewRetentionScheduler(sweeper, log, service.WithSchedulerMetrics(m))
	channels := service.NewChannelService(storage.NewChannelRepo(db), sched, log)

	svc := discordrouter.Services{Channels: channels, Sweeper: sweeper}
	if cfg.AccessEnabled {
		ga := discordrouter.NewGuildAccess(s)
		svc.Access = service.NewAccessService(ga, ga, rate.NewLimiter(rate.Every(cfg.OverwriteEditDelay), 1), m, log)
	}
	if cfg.GreetEnabled() {
		svc.Greet = service.NewGreetService(store, cfg.GreetChannelID, m, log)
	}

	sched.Start()

	// Router
	r := discordrouter.NewRouter(s, svc, cfg.CommandRole, m, log)
	r.Handlers()
	if err := s.Open(); err != nil {
		_ = sched.Stop(context.Background())
		return errors.Wrap(err, "discord open")
	}
	if u := s.State.User; u != nil {
		log.Info().Str("user", u.Username).Str("id", u.ID).Msg("✅ conectado a Discord")
	}

	// HTTP status
	web := httpstatus.New(sched, db, botName(s), m, log)
	go func() {
		if err := web.Start(cfg.HTTPAddr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("apagando...")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := web.Shutdown(sctx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	if err := s.Close(); err != nil {
		log.Warn().Err(err).Msg("discord close")
	}
	if err := sched.Stop(sctx); err != nil {
		log.Warn().Err(err).Msg("scheduler stop: sweeps still running")
	}
	return nil
}

// botName lee el usuario conectado; vacío mientras no haya READY.
func botName(s *discordgo.Session) func() string {
	return func() string {
		s.State.RLock()
		defer s.State.RUnlock()
		if s.State.User == nil {
			return ""
		}
		return s.State.User.Username
	}
}
