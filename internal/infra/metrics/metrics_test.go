package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordSweep("ok", 1, 2, time.Second)
		m.SetArmed(3)
		m.RecordOverwrite("ok")
		m.RecordGreeting()
		m.RecordCommand("scan")
		m.RecordDeleted(1, 1)
	})
}

func TestRecordSweep(t *testing.T) {
	m := New()
	m.RecordSweep("ok", 5, 2, 1500*time.Millisecond)
	m.RecordSweep("channel_missing", 0, 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepsTotal.WithLabelValues("channel_missing")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.MessagesDeleted.WithLabelValues("bulk")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MessagesDeleted.WithLabelValues("single")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.SetArmed(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "gravbits_armed_channels 4"))
}
