package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/jose-valero/gravbits/internal/domain"
)

// fakeStore simula el historial de un canal, del más nuevo al más viejo.
type fakeStore struct {
	mu         sync.Mutex
	msgs       []domain.MessageRecord
	deleted    map[string]bool
	missing    bool
	bulkErr    error
	failDelete map[string]bool
	fetchErrAt int // número de fetch (1-based) que falla; 0 = nunca

	fetches int
	bulks   [][]string
	singles []string
}

func newFakeStore(msgs []domain.MessageRecord) *fakeStore {
	return &fakeStore{msgs: msgs, deleted: map[string]bool{}, failDelete: map[string]bool{}}
}

func (f *fakeStore) Channel(_ context.Context, channelID string) (domain.GuildChannel, error) {
	if f.missing {
		return domain.GuildChannel{}, errors.New("unknown channel")
	}
	return domain.GuildChannel{ID: channelID, Name: "general", Kind: domain.ChannelKindText}, nil
}

func (f *fakeStore) Messages(_ context.Context, _ string, limit int, beforeID string) ([]domain.MessageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErrAt != 0 && f.fetches == f.fetchErrAt {
		return nil, errors.New("gateway timeout")
	}

	start := 0
	if beforeID != "" {
		for i, m := range f.msgs {
			if m.ID == beforeID {
				start = i + 1
				break
			}
		}
	}
	out := []domain.MessageRecord{}
	for _, m := range f.msgs[start:] {
		if len(out) == limit {
			break
		}
		if f.deleted[m.ID] {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStore) BulkDelete(_ context.Context, _ string, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.bulks = append(f.bulks, append([]string(nil), ids...))
	for _, id := range ids {
		f.deleted[id] = true
	}
	return nil
}

func (f *fakeStore) DeleteMessage(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete[id] {
		return errors.New("missing permissions")
	}
	f.singles = append(f.singles, id)
	f.deleted[id] = true
	return nil
}

func (f *fakeStore) bulkIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, b := range f.bulks {
		out = append(out, b...)
	}
	return out
}

type fakeNotifier struct {
	mu      sync.Mutex
	posts   []string
	removed []string
	postErr error
}

func (n *fakeNotifier) Post(_ context.Context, channelID, text string) (domain.MessageRecord, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.postErr != nil {
		return domain.MessageRecord{}, n.postErr
	}
	n.posts = append(n.posts, text)
	return domain.MessageRecord{ID: fmt.Sprintf("notice-%d", len(n.posts)), CreatedAt: time.Now()}, nil
}

func (n *fakeNotifier) DeleteMessage(_ context.Context, _ string, id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed = append(n.removed, id)
	return nil
}

func (n *fakeNotifier) Posts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.posts...)
}

func (n *fakeNotifier) Removed() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.removed...)
}

type countingPacer struct{ n int32 }

func (p *countingPacer) Wait(ctx context.Context) error {
	atomic.AddInt32(&p.n, 1)
	return ctx.Err()
}

func (p *countingPacer) Count() int { return int(atomic.LoadInt32(&p.n)) }

// history arma mensajes del más nuevo al más viejo con las edades dadas (relativas a now).
// Los ids son decrecientes como los snowflakes de Discord.
func history(now time.Time, ages ...time.Duration) []domain.MessageRecord {
	out := make([]domain.MessageRecord, len(ages))
	for i, age := range ages {
		out[i] = domain.MessageRecord{
			ID:        fmt.Sprintf("%08d", len(ages)-i),
			CreatedAt: now.Add(-age),
		}
	}
	return out
}

// repeat devuelve n edades que arrancan en from y crecen de a step.
func repeat(n int, from, step time.Duration) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = from + time.Duration(i)*step
	}
	return out
}

func concat(parts ...[]time.Duration) []time.Duration {
	var out []time.Duration
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
