// Package metrics expone los collectors de Prometheus del bot.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors. Un *Metrics nil es válido y no registra nada,
// así los servicios no necesitan chequear antes de llamar.
type Metrics struct {
	SweepsTotal     *prometheus.CounterVec
	MessagesDeleted *prometheus.CounterVec
	SweepDuration   prometheus.Histogram
	ArmedChannels   prometheus.Gauge
	OverwriteEdits  *prometheus.CounterVec
	GreetingsTotal  prometheus.Counter
	CommandsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		SweepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gravbits_sweeps_total",
				Help: "Retention sweeps by outcome.",
			},
			[]string{"outcome"},
		),
		MessagesDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gravbits_messages_deleted_total",
				Help: "Deleted messages by deletion mode (bulk or single).",
			},
			[]string{"mode"},
		),
		SweepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gravbits_sweep_duration_seconds",
				Help:    "Wall time of a retention sweep.",
				Buckets: []float64{0.5, 1, 5, 15, 60, 300, 900, 3600},
			},
		),
		ArmedChannels: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "gravbits_armed_channels",
				Help: "Channels with a live sweep timer.",
			},
		),
		OverwriteEdits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gravbits_overwrite_edits_total",
				Help: "Permission overwrite edits by result.",
			},
			[]string{"result"},
		),
		GreetingsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gravbits_greetings_total",
				Help: "Presence greetings posted.",
			},
		),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gravbits_commands_total",
				Help: "Slash commands handled by name.",
			},
			[]string{"command"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.SweepsTotal,
		m.MessagesDeleted,
		m.SweepDuration,
		m.ArmedChannels,
		m.OverwriteEdits,
		m.GreetingsTotal,
		m.CommandsTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler devuelve el http.Handler para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordSweep(outcome string, bulk, single int, took time.Duration) {
	if m == nil {
		return
	}
	m.SweepsTotal.WithLabelValues(outcome).Inc()
	m.MessagesDeleted.WithLabelValues("bulk").Add(float64(bulk))
	m.MessagesDeleted.WithLabelValues("single").Add(float64(single))
	m.SweepDuration.Observe(took.Seconds())
}

func (m *Metrics) RecordDeleted(bulk, single int) {
	if m == nil {
		return
	}
	m.MessagesDeleted.WithLabelValues("bulk").Add(float64(bulk))
	m.MessagesDeleted.WithLabelValues("single").Add(float64(single))
}

func (m *Metrics) SetArmed(n int) {
	if m == nil {
		return
	}
	m.ArmedChannels.Set(float64(n))
}

func (m *Metrics) RecordOverwrite(result string) {
	if m == nil {
		return
	}
	m.OverwriteEdits.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordGreeting() {
	if m == nil {
		return
	}
	m.GreetingsTotal.Inc()
}

func (m *Metrics) RecordCommand(name string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(name).Inc()
}
