package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

type fixedArmed int

func (f fixedArmed) Len() int { return int(f) }

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestStatus(t *testing.T) {
	srv := New(fixedArmed(3), fakePinger{}, func() string { return "gravbits#0001" }, nil, zerolog.Nop())

	req, _ := http.NewRequest("GET", "/status", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, StatusResponse{Status: "OK", Bot: "gravbits#0001", MonitoredChannels: 3}, body)
}

func TestStatus_Disconnected(t *testing.T) {
	srv := New(fixedArmed(0), nil, func() string { return "" }, nil, zerolog.Nop())

	req, _ := http.NewRequest("GET", "/status", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	var body StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Disconnected", body.Bot)
}

func TestRoot(t *testing.T) {
	srv := New(fixedArmed(0), nil, nil, nil, zerolog.Nop())

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "the bot is running")
}

func TestHealthz(t *testing.T) {
	ok := New(fixedArmed(0), fakePinger{}, nil, nil, zerolog.Nop())
	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := ok.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := New(fixedArmed(0), fakePinger{err: errors.New("connection refused")}, nil, nil, zerolog.Nop())
	req, _ = http.NewRequest("GET", "/healthz", nil)
	resp, err = down.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.SetArmed(2)
	srv := New(fixedArmed(2), nil, nil, m, zerolog.Nop())

	req, _ := http.NewRequest("GET", "/metrics", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "gravbits_armed_channels 2")
}
