package prom

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelIntentType = "intent_type"
	labelOutcome    = "outcome"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// Recorder exports intent counters to Prometheus. Each Recorder owns
// its registry so the /metrics surface carries only game series.
type Recorder struct {
	registry *prometheus.Registry
	intents  *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	intents := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdant_intents_total",
			Help: "Player intents processed by the orchestrator.",
		},
		[]string{labelIntentType, labelOutcome},
	)
	return &Recorder{registry: registry, intents: intents}
}

func (r *Recorder) RecordAccepted(intentType string) {
	r.intents.WithLabelValues(intentType, outcomeAccepted).Inc()
}

func (r *Recorder) RecordRejected(intentType string) {
	r.intents.WithLabelValues(intentType, outcomeRejected).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
