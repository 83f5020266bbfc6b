package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

// GreetService saluda a un miembro cuando se conecta, una vez por día (UTC).
type GreetService struct {
	poster    Poster
	channelID string
	metrics   *metrics.Metrics
	log       zerolog.Logger
	now       func() time.Time

	mu   sync.Mutex
	last map[string]string // userID -> YYYY-MM-DD
}

func NewGreetService(p Poster, channelID string, m *metrics.Metrics, logger zerolog.Logger) *GreetService {
	return &GreetService{
		poster:    p,
		channelID: channelID,
		metrics:   m,
		log:       logger.With().Str("component", "greet").Logger(),
		now:       time.Now,
		last:      map[string]string{},
	}
}

// Online se llama cuando el presence de userID pasa a online. Devuelve true si saludó.
func (s *GreetService) Online(ctx context.Context, userID, displayName string) (bool, error) {
	today := s.now().UTC().Format("2006-01-02")

	s.mu.Lock()
	if s.last[userID] == today {
		s.mu.Unlock()
		return false, nil
	}
	s.last[userID] = today
	s.mu.Unlock()

	if _, err := s.poster.Post(ctx, s.channelID, fmt.Sprintf("Hello %s! 👋 Welcome back!", displayName)); err != nil {
		// se libera el día para reintentar en el próximo presence update
		s.mu.Lock()
		if s.last[userID] == today {
			delete(s.last, userID)
		}
		s.mu.Unlock()
		return false, errors.Wrapf(err, "greet %s", userID)
	}
	s.metrics.RecordGreeting()
	s.log.Debug().Str("user", userID).Msg("greeted")
	return true, nil
}
