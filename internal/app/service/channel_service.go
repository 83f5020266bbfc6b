package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/storage"
)

// ChannelService maneja el ciclo de vida de las policies y mantiene los timers en sync.
// mu hace de único escritor: persistir+armar nunca se intercala con listar+recargar.
type ChannelService struct {
	mu    sync.Mutex
	repo  PolicyRepo
	sched Armer
	log   zerolog.Logger
}

func NewChannelService(r PolicyRepo, sched Armer, logger zerolog.Logger) *ChannelService {
	return &ChannelService{
		repo:  r,
		sched: sched,
		log:   logger.With().Str("component", "channels").Logger(),
	}
}

// Add registra el canal con la policy por defecto (pisa la existente) y arma su timer.
func (s *ChannelService) Add(ctx context.Context, guildID, channelID string) (domain.ChannelPolicy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.NewChannelPolicy(guildID, channelID)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return domain.ChannelPolicy{}, errors.Wrap(err, "add channel")
	}
	s.sched.Arm(p)
	s.log.Info().Str("guild", guildID).Str("channel", channelID).Msg("channel added")
	return p, nil
}

// Remove borra la policy y limpia el timer aunque no hubiera fila.
// Si el borrado falla la fila sigue y su timer también.
func (s *ChannelService) Remove(ctx context.Context, guildID, channelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.repo.Delete(ctx, guildID, channelID)
	if err != nil {
		return false, errors.Wrap(err, "remove channel")
	}
	s.sched.Disarm(channelID)
	s.log.Info().Str("guild", guildID).Str("channel", channelID).Bool("existed", ok).Msg("channel removed")
	return ok, nil
}

func (s *ChannelService) SetInterval(ctx context.Context, guildID, channelID string, hours int) (domain.ChannelPolicy, error) {
	return s.update(ctx, guildID, channelID, domain.ChannelPolicyUpdate{IntervalHours: &hours})
}

func (s *ChannelService) SetDeleteAge(ctx context.Context, guildID, channelID string, hours int) (domain.ChannelPolicy, error) {
	return s.update(ctx, guildID, channelID, domain.ChannelPolicyUpdate{DeleteAgeHours: &hours})
}

func (s *ChannelService) update(ctx context.Context, guildID, channelID string, u domain.ChannelPolicyUpdate) (domain.ChannelPolicy, error) {
	if u.IntervalHours != nil && *u.IntervalHours < 1 {
		return domain.ChannelPolicy{}, ErrInvalidHours
	}
	if u.DeleteAgeHours != nil && *u.DeleteAgeHours < 1 {
		return domain.ChannelPolicy{}, ErrInvalidHours
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Update(ctx, guildID, channelID, u)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.ChannelPolicy{}, ErrNotMonitored
	}
	if err != nil {
		return domain.ChannelPolicy{}, errors.Wrap(err, "update channel")
	}
	s.sched.Arm(p)
	return p, nil
}

func (s *ChannelService) List(ctx context.Context, guildID string) ([]domain.ChannelPolicy, error) {
	ps, err := s.repo.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, errors.Wrap(err, "list channels")
	}
	return ps, nil
}

// Reload resincroniza los timers con lo persistido (arranque / reconexión).
func (s *ChannelService) Reload(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "reload channels")
	}
	s.sched.ReloadAll(ps)
	return len(ps), nil
}
