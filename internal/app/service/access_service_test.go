package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/gravbits/internal/app/service/mocks"
	"github.com/jose-valero/gravbits/internal/domain"
)

var guildChannels = []domain.GuildChannel{
	{ID: "t1", Name: "general", Kind: domain.ChannelKindText},
	{ID: "v1", Name: "Lobby", Kind: domain.ChannelKindVoice},
	{ID: "cat", Name: "Category", Kind: domain.ChannelKindOther},
	{ID: "f1", Name: "help", Kind: domain.ChannelKindForum},
}

func newAccessWithMocks(t *testing.T) (*AccessService, *mocks.MockGuildDirectory, *mocks.MockOverwriteEditor, *countingPacer) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockGuildDirectory(ctrl)
	ed := mocks.NewMockOverwriteEditor(ctrl)
	p := &countingPacer{}
	return NewAccessService(dir, ed, p, nil, zerolog.Nop()), dir, ed, p
}

func TestAccess_GrantSkipsOtherKindsAndPaces(t *testing.T) {
	svc, dir, ed, pacer := newAccessWithMocks(t)
	user, role := domain.Member("u1"), domain.Role("r1")

	dir.EXPECT().GuildChannels(gomock.Any(), "g1").Return(guildChannels, nil)
	for _, ch := range []domain.GuildChannel{guildChannels[0], guildChannels[1], guildChannels[3]} {
		ed.EXPECT().Allow(gomock.Any(), ch, user).Return(nil)
		ed.EXPECT().Allow(gomock.Any(), ch, role).Return(nil)
	}

	rep, err := svc.Grant(context.Background(), "g1", user, role)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Applied)
	assert.Equal(t, 1, rep.Skipped)
	assert.True(t, rep.OK())
	assert.Equal(t, 6, pacer.Count())
}

func TestAccess_GrantReportsFailuresAndContinues(t *testing.T) {
	svc, dir, ed, _ := newAccessWithMocks(t)
	user := domain.Member("u1")

	dir.EXPECT().GuildChannels(gomock.Any(), "g1").Return(guildChannels, nil)
	ed.EXPECT().Allow(gomock.Any(), guildChannels[0], user).Return(errors.New("missing permissions"))
	ed.EXPECT().Allow(gomock.Any(), guildChannels[1], user).Return(nil)
	ed.EXPECT().Allow(gomock.Any(), guildChannels[3], user).Return(nil)

	rep, err := svc.Grant(context.Background(), "g1", user)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Applied)
	assert.Equal(t, []string{"t1"}, rep.Failed)
}

func TestAccess_RevokeAllTouchesEveryChannel(t *testing.T) {
	svc, dir, ed, pacer := newAccessWithMocks(t)
	user := domain.Member("u1")

	dir.EXPECT().GuildChannels(gomock.Any(), "g1").Return(guildChannels, nil)
	for _, ch := range guildChannels {
		ed.EXPECT().Remove(gomock.Any(), ch.ID, user).Return(nil)
	}

	rep, err := svc.RevokeAll(context.Background(), "g1", user)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Applied)
	assert.Equal(t, 4, pacer.Count())
}

func TestAccess_RevokeSingleChannel(t *testing.T) {
	svc, _, ed, _ := newAccessWithMocks(t)
	ed.EXPECT().Remove(gomock.Any(), "t1", domain.Role("r1")).Return(nil)

	rep, err := svc.Revoke(context.Background(), "t1", domain.Role("r1"))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Applied)
}

func TestAccess_RequiresTarget(t *testing.T) {
	svc, _, _, _ := newAccessWithMocks(t)

	_, err := svc.Grant(context.Background(), "g1")
	assert.ErrorIs(t, err, ErrNoTarget)
	_, err = svc.Revoke(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrNoTarget)
	_, err = svc.RevokeAll(context.Background(), "g1")
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestAccess_CancelledContextStops(t *testing.T) {
	svc, dir, _, _ := newAccessWithMocks(t)
	dir.EXPECT().GuildChannels(gomock.Any(), "g1").Return(guildChannels, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Grant(ctx, "g1", domain.Member("u1"))
	assert.ErrorIs(t, err, context.Canceled)
}
