/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webui

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons recorded in webui_dispatch_failures_total.
const (
	reasonElementDecode = "element_decode"
	reasonUnknownType   = "unknown_event_type"
	reasonHandlerPanic  = "handler_panic"
)

// Metrics collects dispatch statistics for a Bridge.
type Metrics struct {
	events   *prometheus.CounterVec
	misses   prometheus.Counter
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bindings prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what tests and embedders
// with their own exposition usually want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "webui",
				Name:      "events_dispatched_total",
				Help:      "Events delivered to a handler, by event type.",
			},
			[]string{"event_type"},
		),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "webui",
			Name:      "dispatch_misses_total",
			Help:      "Events whose bind id had no registered handler.",
		}),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "webui",
				Name:      "dispatch_failures_total",
				Help:      "Dispatch problems, by reason.",
			},
			[]string{"reason"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "webui",
				Name:      "handler_duration_seconds",
				Help:      "Handler execution time, by event type.",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"event_type"},
		),
		bindings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "webui",
			Name:      "bindings",
			Help:      "Handlers currently registered.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.events, m.misses, m.failures, m.duration, m.bindings)
	}
	return m
}

func (m *Metrics) observeDispatch(t EventType, d time.Duration) {
	m.events.WithLabelValues(t.String()).Inc()
	m.duration.WithLabelValues(t.String()).Observe(d.Seconds())
}

func (m *Metrics) miss() {
	m.misses.Inc()
}

func (m *Metrics) failure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

// addBindings moves the bindings gauge by the change one registry call made.
func (m *Metrics) addBindings(delta int) {
	if delta != 0 {
		m.bindings.Add(float64(delta))
	}
}
