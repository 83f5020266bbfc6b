package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/domain"
	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

// Lo implementa SweepService
type Sweeper interface {
	Sweep(ctx context.Context, channelID string, deleteAgeHours int) domain.SweepResult
}

type SchedulerOption func(*RetentionScheduler)

// WithIntervalUnit cambia la unidad de IntervalHours (tests usan segundos).
func WithIntervalUnit(d time.Duration) SchedulerOption {
	return func(s *RetentionScheduler) { s.unit = d }
}

func WithSchedulerMetrics(m *metrics.Metrics) SchedulerOption {
	return func(s *RetentionScheduler) { s.metrics = m }
}

// armedTimer: la entrada de cron de un canal y con qué valores se armó.
type armedTimer struct {
	id       cron.EntryID
	interval int
	age      int
}

// RetentionScheduler mantiene un timer recurrente por canal monitoreado.
// mu serializa Arm/Disarm/ReloadAll: siempre queda a lo sumo un timer por canal.
type RetentionScheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]armedTimer
	unit    time.Duration

	runMu    sync.Mutex
	inflight map[string]struct{}

	sweeper Sweeper
	metrics *metrics.Metrics
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRetentionScheduler(sw Sweeper, logger zerolog.Logger, opts ...SchedulerOption) *RetentionScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RetentionScheduler{
		entries:  map[string]armedTimer{},
		unit:     time.Hour,
		inflight: map[string]struct{}{},
		sweeper:  sw,
		log:      logger.With().Str("component", "scheduler").Logger(),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, o := range opts {
		o(s)
	}
	cl := cronLogger{log: s.log}
	s.cron = cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl)))
	return s
}

func (s *RetentionScheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop frena los timers y espera los barridos en curso hasta que ctx venza;
// si vence, cancela el contexto de los barridos.
func (s *RetentionScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}

// Arm reemplaza el timer del canal (si había) por uno nuevo cada IntervalHours.
// No dispara un barrido inmediato.
func (s *RetentionScheduler) Arm(p domain.ChannelPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armLocked(p)
	s.metrics.SetArmed(len(s.entries))
}

func (s *RetentionScheduler) Disarm(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.entries[channelID]; ok {
		s.cron.Remove(t.id)
		delete(s.entries, channelID)
		s.log.Info().Str("channel", channelID).Msg("timer cleared")
	}
	s.metrics.SetArmed(len(s.entries))
}

// ReloadAll deja un timer por policy. Los timers que ya estaban armados con el mismo
// intervalo y edad se conservan (su próximo disparo no se corre); el resto se rearma
// y los canales que no aparecen se desarman.
func (s *RetentionScheduler) ReloadAll(policies []domain.ChannelPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[string]struct{}, len(policies))
	for _, p := range policies {
		want[p.ChannelID] = struct{}{}
	}
	for ch, t := range s.entries {
		if _, ok := want[ch]; !ok {
			s.cron.Remove(t.id)
			delete(s.entries, ch)
		}
	}
	for _, p := range policies {
		if t, ok := s.entries[p.ChannelID]; ok && t.interval == intervalHours(p) && t.age == p.DeleteAgeHours {
			continue
		}
		s.armLocked(p)
	}
	s.metrics.SetArmed(len(s.entries))
	s.log.Info().Int("channels", len(s.entries)).Msg("timers reloaded")
}

// Armed devuelve los canales con timer activo, ordenados.
func (s *RetentionScheduler) Armed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for ch := range s.entries {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

func (s *RetentionScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *RetentionScheduler) armLocked(p domain.ChannelPolicy) {
	if t, ok := s.entries[p.ChannelID]; ok {
		s.cron.Remove(t.id)
	}
	hours := intervalHours(p)
	if hours != p.IntervalHours {
		s.log.Warn().Str("channel", p.ChannelID).Int("interval", p.IntervalHours).Msg("invalid interval, using default")
	}
	channelID, age := p.ChannelID, p.DeleteAgeHours
	id := s.cron.Schedule(cron.Every(time.Duration(hours)*s.unit), cron.FuncJob(func() {
		s.fire(channelID, age)
	}))
	s.entries[channelID] = armedTimer{id: id, interval: hours, age: age}
	s.log.Info().
		Str("guild", p.GuildID).
		Str("channel", channelID).
		Int("interval_hours", hours).
		Int("delete_age_hours", age).
		Msg("timer armed")
}

func intervalHours(p domain.ChannelPolicy) int {
	if p.IntervalHours < 1 {
		return domain.DefaultIntervalHours
	}
	return p.IntervalHours
}

// fire corre un barrido; si el anterior del mismo canal sigue corriendo, se salta el tick.
func (s *RetentionScheduler) fire(channelID string, deleteAgeHours int) {
	if !s.acquire(channelID) {
		s.log.Warn().Str("channel", channelID).Msg("previous sweep still running, tick skipped")
		return
	}
	defer s.release(channelID)

	res := s.sweeper.Sweep(s.ctx, channelID, deleteAgeHours)
	s.log.Debug().
		Str("channel", channelID).
		Str("run", res.RunID).
		Int("deleted", res.DeletedCount).
		Msg("tick done")
}

func (s *RetentionScheduler) acquire(channelID string) bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if _, busy := s.inflight[channelID]; busy {
		return false
	}
	s.inflight[channelID] = struct{}{}
	return true
}

func (s *RetentionScheduler) release(channelID string) {
	s.runMu.Lock()
	delete(s.inflight, channelID)
	s.runMu.Unlock()
}

// cronLogger adapta zerolog a cron.Logger.
type cronLogger struct{ log zerolog.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
