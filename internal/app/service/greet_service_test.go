package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/gravbits/internal/app/service/mocks"
	"github.com/jose-valero/gravbits/internal/domain"
)

func TestGreet_OncePerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	poster := mocks.NewMockPoster(ctrl)
	svc := NewGreetService(poster, "lobby", nil, zerolog.Nop())

	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	poster.EXPECT().Post(gomock.Any(), "lobby", "Hello Ana! 👋 Welcome back!").
		Return(domain.MessageRecord{ID: "m1"}, nil).Times(2)

	ok, err := svc.Online(context.Background(), "u1", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(10 * time.Hour)
	ok, err = svc.Online(context.Background(), "u1", "Ana")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(7 * time.Hour) // siguiente día UTC
	ok, err = svc.Online(context.Background(), "u1", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGreet_FailedPostCanRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	poster := mocks.NewMockPoster(ctrl)
	svc := NewGreetService(poster, "lobby", nil, zerolog.Nop())

	gomock.InOrder(
		poster.EXPECT().Post(gomock.Any(), "lobby", gomock.Any()).Return(domain.MessageRecord{}, errors.New("rate limited")),
		poster.EXPECT().Post(gomock.Any(), "lobby", gomock.Any()).Return(domain.MessageRecord{ID: "m2"}, nil),
	)

	ok, err := svc.Online(context.Background(), "u1", "Ana")
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = svc.Online(context.Background(), "u1", "Ana")
	require.NoError(t, err)
	assert.True(t, ok)
}
