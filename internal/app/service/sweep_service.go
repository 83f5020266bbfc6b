package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

const (
	// PageSize es el máximo que Discord devuelve por fetch y acepta por bulk delete.
	PageSize = 100
	// BulkDeleteWindow: Discord sólo permite bulk delete de mensajes más nuevos que esto.
	BulkDeleteWindow = 14 * 24 * time.Hour

	DefaultNoticeTTL = 5 * time.Second
)

type SweepOption func(*SweepService)

func WithClock(now func() time.Time) SweepOption {
	return func(s *SweepService) { s.now = now }
}

func WithNoticeTTL(d time.Duration) SweepOption {
	return func(s *SweepService) { s.noticeTTL = d }
}

func WithSweepMetrics(m *metrics.Metrics) SweepOption {
	return func(s *SweepService) { s.metrics = m }
}

// SweepService borra mensajes viejos de un canal: por edad (Sweep) o los N últimos (Purge).
type SweepService struct {
	store     MessageStore
	notifier  Notifier
	pacer     Pacer
	metrics   *metrics.Metrics
	log       zerolog.Logger
	now       func() time.Time
	noticeTTL time.Duration
}

func NewSweepService(store MessageStore, notifier Notifier, pacer Pacer, logger zerolog.Logger, opts ...SweepOption) *SweepService {
	s := &SweepService{
		store:     store,
		notifier:  notifier,
		pacer:     pacer,
		log:       logger.With().Str("component", "sweep").Logger(),
		now:       time.Now,
		noticeTTL: DefaultNoticeTTL,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Sweep borra los mensajes del canal con más de deleteAgeHours horas.
// Nunca devuelve error: un canal inaccesible aborta el barrido con 0 borrados
// y el próximo tick del scheduler es el reintento.
func (s *SweepService) Sweep(ctx context.Context, channelID string, deleteAgeHours int) domain.SweepResult {
	start := time.Now()
	res := domain.SweepResult{RunID: uuid.NewString(), ChannelID: channelID}
	log := s.log.With().Str("run", res.RunID).Str("channel", channelID).Logger()

	ch, err := s.store.Channel(ctx, channelID)
	if err != nil {
		log.Warn().Err(err).Msg("channel not reachable, sweep skipped")
		res.CompletedAt = s.now()
		s.metrics.RecordSweep("channel_missing", 0, 0, time.Since(start))
		return res
	}

	now := s.now()
	cutoff := now.Add(-time.Duration(deleteAgeHours) * time.Hour)
	bulkLine := now.Add(-BulkDeleteWindow)
	log.Debug().Str("name", ch.Name).Time("cutoff", cutoff).Msg("sweep start")

	outcome := "ok"
	before := ""
	for {
		page, err := s.store.Messages(ctx, channelID, PageSize, before)
		res.Pages++
		if err != nil {
			log.Warn().Err(err).Int("page", res.Pages).Msg("fetch failed, stopping pagination")
			outcome = "partial"
			break
		}
		if len(page) == 0 {
			break
		}
		// las páginas vienen del más nuevo al más viejo
		before = page[len(page)-1].ID

		bulk, single := s.deleteBatch(ctx, log, channelID, OlderThan(page, cutoff), bulkLine)
		res.BulkDeleted += bulk
		res.SingleDeleted += single

		if len(page) < PageSize {
			break
		}
		if ctx.Err() != nil {
			outcome = "cancelled"
			break
		}
	}

	res.DeletedCount = res.BulkDeleted + res.SingleDeleted
	res.CompletedAt = s.now()

	if res.DeletedCount > 0 {
		log.Info().
			Int("deleted", res.DeletedCount).
			Int("bulk", res.BulkDeleted).
			Int("single", res.SingleDeleted).
			Int("pages", res.Pages).
			Msgf("deleted messages from #%s", ch.Name)
		s.notify(ctx, log, channelID, fmt.Sprintf("Deleted %d messages older than %d hours.", res.DeletedCount, deleteAgeHours))
	}
	s.metrics.RecordSweep(outcome, res.BulkDeleted, res.SingleDeleted, time.Since(start))
	return res
}

// Purge borra los count mensajes más recientes, sin filtro de edad.
func (s *SweepService) Purge(ctx context.Context, channelID string, count int) (int, error) {
	if count < 1 || count > PageSize {
		return 0, ErrInvalidCount
	}
	msgs, err := s.store.Messages(ctx, channelID, count, "")
	if err != nil {
		return 0, errors.Wrapf(err, "fetch messages of %s", channelID)
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	log := s.log.With().Str("channel", channelID).Str("op", "purge").Logger()
	bulk, single := s.deleteBatch(ctx, log, channelID, msgs, s.now().Add(-BulkDeleteWindow))
	s.metrics.RecordDeleted(bulk, single)
	log.Info().Int("requested", count).Int("fetched", len(msgs)).Int("deleted", bulk+single).Msg("purge done")
	return bulk + single, nil
}

// deleteBatch borra msgs: bulk para los más nuevos que bulkLine, de a uno (con pacing) el resto.
// Los errores por mensaje se loguean y se sigue con el próximo.
func (s *SweepService) deleteBatch(ctx context.Context, log zerolog.Logger, channelID string, msgs []domain.MessageRecord, bulkLine time.Time) (bulk, single int) {
	if len(msgs) == 0 {
		return 0, 0
	}
	recent, old := PartitionByAge(msgs, bulkLine)

	if len(recent) > 0 {
		if err := s.store.BulkDelete(ctx, channelID, messageIDs(recent)); err != nil {
			log.Warn().Err(err).Int("count", len(recent)).Msg("bulk delete failed")
		} else {
			bulk = len(recent)
		}
	}

	for _, m := range old {
		if err := s.pacer.Wait(ctx); err != nil {
			log.Warn().Err(err).Int("left", len(old)-single).Msg("single delete pacing interrupted")
			break
		}
		if err := s.store.DeleteMessage(ctx, channelID, m.ID); err != nil {
			log.Warn().Err(err).Str("message", m.ID).Msg("delete failed")
			continue
		}
		single++
	}
	return bulk, single
}

// notify publica el resumen y lo borra pasado noticeTTL (best effort).
func (s *SweepService) notify(ctx context.Context, log zerolog.Logger, channelID, text string) {
	msg, err := s.notifier.Post(ctx, channelID, text)
	if err != nil {
		log.Warn().Err(err).Msg("summary notice failed")
		return
	}
	time.AfterFunc(s.noticeTTL, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.notifier.DeleteMessage(ctx, channelID, msg.ID)
	})
}

// OlderThan filtra los mensajes creados antes de cutoff.
func OlderThan(msgs []domain.MessageRecord, cutoff time.Time) []domain.MessageRecord {
	out := make([]domain.MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		if m.CreatedAt.Before(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

// PartitionByAge separa lo que entra en bulk delete (más nuevo que line)
// de lo que hay que borrar de a uno (igual o más viejo).
func PartitionByAge(msgs []domain.MessageRecord, line time.Time) (recent, old []domain.MessageRecord) {
	for _, m := range msgs {
		if m.CreatedAt.After(line) {
			recent = append(recent, m)
		} else {
			old = append(old, m)
		}
	}
	return recent, old
}

func messageIDs(msgs []domain.MessageRecord) []string {
	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	return ids
}
