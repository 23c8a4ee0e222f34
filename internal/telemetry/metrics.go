package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluations counts scored transactions by final verdict.
	Evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudscore_evaluations_total",
		Help: "Number of transactions scored, labeled by verdict.",
	}, []string{"verdict"})

	// EvaluationErrors counts evaluations that failed before a verdict.
	EvaluationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fraudscore_evaluation_errors_total",
		Help: "Number of evaluations that returned an error.",
	})

	// Probabilities observes the model output distribution.
	Probabilities = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fraudscore_probability",
		Help:    "Distribution of fraud probabilities returned by the model.",
		Buckets: prometheus.LinearBuckets(0, 0.1, 10),
	})
)
