package observability

import (
	"context"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of tally_evaluations_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the Prometheus collectors for calculator activity.
type Metrics struct {
	Inputs      *prometheus.CounterVec
	Ignored     *prometheus.CounterVec
	Evaluations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Inputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_inputs_total",
				Help: "Total number of input events applied, by event type",
			},
			[]string{"type"},
		),
		Ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_inputs_ignored_total",
				Help: "Input events rejected by the editing rules, by event type",
			},
			[]string{"type"},
		),
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_evaluations_total",
				Help: "Equals confirmations, by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.Inputs, m.Ignored, m.Evaluations)
	return m
}

// Hooks returns lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInput: func(_ context.Context, e *domain.InputEvent) {
			m.Inputs.WithLabelValues(string(e.Event.Type)).Inc()
			if !e.Accepted {
				m.Ignored.WithLabelValues(string(e.Event.Type)).Inc()
			}
		},
		OnEvaluate: func(_ context.Context, e *domain.EvaluateEvent) {
			outcome := OutcomeOK
			if e.Err != nil {
				outcome = OutcomeError
			}
			m.Evaluations.WithLabelValues(outcome).Inc()
		},
	}
}
