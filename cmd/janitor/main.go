package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	discordrouter "github.com/jose-valero/gravbits/internal/adapters/discord"
	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/config"
	"github.com/jose-valero/gravbits/internal/infra/logging"
	"github.com/jose-valero/gravbits/internal/infra/storage"
)

type policyLister interface {
	ListAll(ctx context.Context) ([]domain.ChannelPolicy, error)
	DeleteChannels(ctx context.Context, channelIDs []string) (int, error)
}

type channelResolver interface {
	Channel(ctx context.Context, channelID string) (domain.GuildChannel, error)
}

// pruneOrphans borra las policies cuyos canales ya no existen en Discord.
// Errores que no son 404 no cuentan como huérfano.
func pruneOrphans(ctx context.Context, repo policyLister, channels channelResolver, isGone func(error) bool, log zerolog.Logger) (int, error) {
	ps, err := repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	var orphans []string
	for _, p := range ps {
		cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := channels.Channel(cctx, p.ChannelID)
		cancel()
		switch {
		case err == nil:
		case isGone(err):
			orphans = append(orphans, p.ChannelID)
		default:
			log.Warn().Err(err).Str("channel", p.ChannelID).Msg("cannot resolve channel, keeping policy")
		}
	}
	return repo.DeleteChannels(ctx, orphans)
}

func handler(ctx context.Context) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Sprintf("config: %v", err), nil
	}
	if err := cfg.RequireDiscord(); err != nil {
		return err.Error(), nil
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat).With().Str("component", "janitor").Logger()

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Sprintf("db: %v", err), nil
	}
	defer db.Close()

	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		return fmt.Sprintf("discord: %v", err), nil
	}

	n, err := pruneOrphans(ctx, storage.NewChannelRepo(db), discordrouter.NewChannelStore(s), discordrouter.IsNotFound, log)
	if err != nil {
		log.Error().Err(err).Msg("prune failed")
		return fmt.Sprintf("prune: %v", err), nil
	}
	log.Info().Int("removed", n).Msg("orphan policies pruned")
	return fmt.Sprintf("ok: %d removed", n), nil
}

func main() { lambda.Start(handler) }
