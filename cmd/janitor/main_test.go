package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/gravbits/internal/domain"
)

var errGone = errors.New("unknown channel")

type fakeRepo struct {
	policies []domain.ChannelPolicy
	listErr  error
	deleted  []string
}

func (f *fakeRepo) ListAll(context.Context) ([]domain.ChannelPolicy, error) {
	return f.policies, f.listErr
}

func (f *fakeRepo) DeleteChannels(_ context.Context, ids []string) (int, error) {
	f.deleted = append(f.deleted, ids...)
	return len(ids), nil
}

type fakeChannels map[string]error

func (f fakeChannels) Channel(_ context.Context, id string) (domain.GuildChannel, error) {
	if err := f[id]; err != nil {
		return domain.GuildChannel{}, err
	}
	return domain.GuildChannel{ID: id, Kind: domain.ChannelKindText}, nil
}

func isGone(err error) bool { return errors.Is(err, errGone) }

func TestPruneOrphans(t *testing.T) {
	repo := &fakeRepo{policies: []domain.ChannelPolicy{
		domain.NewChannelPolicy("g1", "alive"),
		domain.NewChannelPolicy("g1", "gone"),
		domain.NewChannelPolicy("g2", "flaky"),
	}}
	chans := fakeChannels{
		"gone":  errors.Wrap(errGone, "get channel"),
		"flaky": errors.New("502 bad gateway"),
	}

	n, err := pruneOrphans(context.Background(), repo, chans, isGone, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"gone"}, repo.deleted)
}

func TestPruneOrphans_ListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db down")}

	_, err := pruneOrphans(context.Background(), repo, fakeChannels{}, isGone, zerolog.Nop())
	assert.Error(t, err)
	assert.Empty(t, repo.deleted)
}
