package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/gravbits/internal/domain"
)

type sweepCall struct {
	channelID string
	age       int
}

type fakeSweeper struct {
	mu    sync.Mutex
	calls []sweepCall
	block chan struct{}
	panic bool
}

func (f *fakeSweeper) Sweep(_ context.Context, channelID string, age int) domain.SweepResult {
	f.mu.Lock()
	f.calls = append(f.calls, sweepCall{channelID, age})
	block, doPanic := f.block, f.panic
	f.mu.Unlock()

	if doPanic {
		panic("boom")
	}
	if block != nil {
		<-block
	}
	return domain.SweepResult{ChannelID: channelID}
}

func (f *fakeSweeper) Calls() []sweepCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sweepCall(nil), f.calls...)
}

func policy(channelID string, interval, age int) domain.ChannelPolicy {
	return domain.ChannelPolicy{GuildID: "g1", ChannelID: channelID, IntervalHours: interval, DeleteAgeHours: age}
}

func newTestScheduler(sw Sweeper) *RetentionScheduler {
	return NewRetentionScheduler(sw, zerolog.Nop(), WithIntervalUnit(time.Second))
}

func TestScheduler_RearmReplacesTimer(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})

	s.Arm(policy("c1", 1, 1))
	s.Arm(policy("c1", 2, 5))
	s.Arm(policy("c1", 3, 7))

	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.cron.Entries(), 1)
	assert.Equal(t, []string{"c1"}, s.Armed())
}

func TestScheduler_ArmThenDisarmNeverFires(t *testing.T) {
	sw := &fakeSweeper{}
	s := newTestScheduler(sw)
	s.Start()
	defer s.Stop(context.Background())

	s.Arm(policy("c1", 1, 1))
	s.Disarm("c1")

	time.Sleep(1500 * time.Millisecond)
	assert.Empty(t, sw.Calls())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.cron.Entries())
}

func TestScheduler_DisarmUnknownIsNoop(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})
	assert.NotPanics(t, func() { s.Disarm("nope") })
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_FiresWithPolicyAge(t *testing.T) {
	sw := &fakeSweeper{}
	s := newTestScheduler(sw)
	s.Start()
	defer s.Stop(context.Background())

	s.Arm(policy("c1", 1, 6))
	assert.Empty(t, sw.Calls(), "arming must not sweep immediately")

	require.Eventually(t, func() bool { return len(sw.Calls()) >= 1 }, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, sweepCall{"c1", 6}, sw.Calls()[0])
}

func TestScheduler_ReloadAllIsIdempotent(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})
	s.Arm(policy("stale", 1, 1))

	ps := []domain.ChannelPolicy{policy("c1", 1, 1), policy("c2", 2, 3), policy("c3", 4, 4)}
	s.ReloadAll(ps)
	first := s.Armed()
	s.ReloadAll(ps)

	assert.Equal(t, []string{"c1", "c2", "c3"}, first)
	assert.Equal(t, first, s.Armed())
	assert.Len(t, s.cron.Entries(), 3)
}

func TestScheduler_ReloadKeepsUnchangedTimers(t *testing.T) {
	s := NewRetentionScheduler(&fakeSweeper{}, zerolog.Nop())
	s.Start()
	defer s.Stop(context.Background())

	ps := []domain.ChannelPolicy{policy("c1", 24, 24), policy("c2", 48, 1)}
	s.ReloadAll(ps)

	next := func(ch string) time.Time { return s.cron.Entry(s.entries[ch].id).Next }
	require.Eventually(t, func() bool {
		return !next("c1").IsZero() && !next("c2").IsZero()
	}, time.Second, 10*time.Millisecond)

	ids := map[string]cron.EntryID{"c1": s.entries["c1"].id, "c2": s.entries["c2"].id}
	nexts := map[string]time.Time{"c1": next("c1"), "c2": next("c2")}

	// un rearmado después de esto correría Next al menos un segundo
	time.Sleep(1100 * time.Millisecond)
	s.ReloadAll(ps)

	for _, ch := range []string{"c1", "c2"} {
		assert.Equal(t, ids[ch], s.entries[ch].id, "timer of %s was rebuilt", ch)
		assert.Equal(t, nexts[ch], next(ch), "next fire of %s moved", ch)
	}

	s.ReloadAll([]domain.ChannelPolicy{policy("c1", 24, 24), policy("c2", 12, 1)})
	assert.Equal(t, ids["c1"], s.entries["c1"].id)
	assert.NotEqual(t, ids["c2"], s.entries["c2"].id, "changed interval must re-arm")
	assert.Equal(t, 12, s.entries["c2"].interval)

	s.ReloadAll([]domain.ChannelPolicy{policy("c1", 24, 24)})
	assert.Equal(t, []string{"c1"}, s.Armed())
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_ReloadRearmsWhenAgeChanges(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})
	s.ReloadAll([]domain.ChannelPolicy{policy("c1", 2, 1)})
	before := s.entries["c1"].id

	s.ReloadAll([]domain.ChannelPolicy{policy("c1", 2, 6)})
	assert.NotEqual(t, before, s.entries["c1"].id)
	assert.Equal(t, 6, s.entries["c1"].age)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_PanickingSweepIsContained(t *testing.T) {
	sw := &fakeSweeper{panic: true}
	s := newTestScheduler(sw)
	s.Arm(policy("c1", 1, 1))

	entry := s.cron.Entry(s.entries["c1"].id)
	require.True(t, entry.Valid())

	assert.NotPanics(t, func() { entry.WrappedJob.Run() })
	// el guard se libera aunque el barrido haya hecho panic
	assert.NotPanics(t, func() { entry.WrappedJob.Run() })
	assert.Len(t, sw.Calls(), 2)
}

func TestScheduler_SkipsTickWhileSweepInFlight(t *testing.T) {
	sw := &fakeSweeper{block: make(chan struct{})}
	s := newTestScheduler(sw)

	done := make(chan struct{})
	go func() {
		s.fire("c1", 1)
		close(done)
	}()
	require.Eventually(t, func() bool { return len(sw.Calls()) == 1 }, time.Second, 5*time.Millisecond)

	s.fire("c1", 1)
	assert.Len(t, sw.Calls(), 1, "second tick must be skipped")

	close(sw.block)
	<-done

	sw.mu.Lock()
	sw.block = nil
	sw.mu.Unlock()
	s.fire("c1", 1)
	assert.Len(t, sw.Calls(), 2)
}

func TestScheduler_InvalidIntervalFallsBackToDefault(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})
	s.Arm(policy("c1", 0, 1))
	assert.Equal(t, 1, s.Len())
}

func TestScheduler_StopWaitsForRunningSweeps(t *testing.T) {
	s := newTestScheduler(&fakeSweeper{})
	s.Start()
	s.Arm(policy("c1", 1, 1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
