package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

// AccessService agrega o quita permission overwrites de un miembro/rol.
// Las ediciones se espacian con pacer y se esperan todas antes de responder.
type AccessService struct {
	dir     GuildDirectory
	editor  OverwriteEditor
	pacer   Pacer
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewAccessService(dir GuildDirectory, editor OverwriteEditor, pacer Pacer, m *metrics.Metrics, logger zerolog.Logger) *AccessService {
	return &AccessService{
		dir:     dir,
		editor:  editor,
		pacer:   pacer,
		metrics: m,
		log:     logger.With().Str("component", "access").Logger(),
	}
}

// Grant da acceso a los targets en todos los canales text/voice/forum del guild.
func (s *AccessService) Grant(ctx context.Context, guildID string, targets ...domain.OverwriteTarget) (domain.AccessReport, error) {
	if len(targets) == 0 {
		return domain.AccessReport{}, ErrNoTarget
	}
	chans, err := s.dir.GuildChannels(ctx, guildID)
	if err != nil {
		return domain.AccessReport{}, errors.Wrapf(err, "list channels of %s", guildID)
	}

	var rep domain.AccessReport
	for _, ch := range chans {
		if ch.Kind == domain.ChannelKindOther {
			rep.Skipped++
			continue
		}
		if !s.each(ctx, &rep, ch.ID, targets, func(t domain.OverwriteTarget) error {
			return s.editor.Allow(ctx, ch, t)
		}) {
			break
		}
	}
	s.log.Info().Str("guild", guildID).Int("applied", rep.Applied).Int("failed", len(rep.Failed)).Msg("grant done")
	return rep, ctx.Err()
}

// Revoke quita los overwrites de los targets en un canal.
func (s *AccessService) Revoke(ctx context.Context, channelID string, targets ...domain.OverwriteTarget) (domain.AccessReport, error) {
	if len(targets) == 0 {
		return domain.AccessReport{}, ErrNoTarget
	}
	var rep domain.AccessReport
	s.each(ctx, &rep, channelID, targets, func(t domain.OverwriteTarget) error {
		return s.editor.Remove(ctx, channelID, t)
	})
	return rep, ctx.Err()
}

// RevokeAll quita los overwrites de los targets en todos los canales del guild.
func (s *AccessService) RevokeAll(ctx context.Context, guildID string, targets ...domain.OverwriteTarget) (domain.AccessReport, error) {
	if len(targets) == 0 {
		return domain.AccessReport{}, ErrNoTarget
	}
	chans, err := s.dir.GuildChannels(ctx, guildID)
	if err != nil {
		return domain.AccessReport{}, errors.Wrapf(err, "list channels of %s", guildID)
	}

	var rep domain.AccessReport
	for _, ch := range chans {
		id := ch.ID
		if !s.each(ctx, &rep, id, targets, func(t domain.OverwriteTarget) error {
			return s.editor.Remove(ctx, id, t)
		}) {
			break
		}
	}
	s.log.Info().Str("guild", guildID).Int("applied", rep.Applied).Int("failed", len(rep.Failed)).Msg("revoke-all done")
	return rep, ctx.Err()
}

// each aplica fn a cada target en un canal, con pacing antes de cada edición.
// Devuelve false si el contexto se canceló.
func (s *AccessService) each(ctx context.Context, rep *domain.AccessReport, channelID string, targets []domain.OverwriteTarget, fn func(domain.OverwriteTarget) error) bool {
	failed := false
	for _, t := range targets {
		if err := s.pacer.Wait(ctx); err != nil {
			return false
		}
		if err := fn(t); err != nil {
			s.log.Warn().Err(err).Str("channel", channelID).Str("target", t.ID).Msg("overwrite edit failed")
			s.metrics.RecordOverwrite("error")
			failed = true
			continue
		}
		s.metrics.RecordOverwrite("ok")
	}
	if failed {
		rep.Failed = append(rep.Failed, channelID)
	} else {
		rep.Applied++
	}
	return true
}
