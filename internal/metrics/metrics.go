// Package metrics provides Prometheus metrics collection for the wildfire
// destruction-prediction service. It covers training runs, prediction
// serving, and the encoder fallback counters that surface degraded
// unseen-category handling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Prediction metrics
	Predictions       prometheus.Counter   // Total number of predictions served
	PredictionLatency prometheus.Histogram // Prediction latency in seconds
	PredictionScores  prometheus.Histogram // Distribution of predicted destruction probabilities

	// Encoder fallback metrics
	EncodeFallbacks prometheus.Counter // Unseen values encoded as Unknown
	EncodeDefaults  prometheus.Counter // Unseen values encoded as default code 0

	// Training metrics
	TrainingRuns     prometheus.Counter   // Total number of successful training runs
	TrainingFailures prometheus.Counter   // Total number of failed training runs
	TrainingDuration prometheus.Histogram // Training run duration in seconds
	ModelAUC         prometheus.Gauge     // AUC of the current model
	ModelAge         prometheus.Gauge     // Age of the current model in seconds

	// Ingestion metrics
	RecordsIngested prometheus.Counter // Total number of dataset records loaded
}

// New creates and registers all metrics using the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates metrics with a custom registry (useful for
// testing without touching the global registry).
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		Predictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of destruction predictions served",
		}),
		PredictionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prediction_latency_seconds",
			Help:    "Prediction latency in seconds (end-to-end)",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		PredictionScores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prediction_scores",
			Help:    "Distribution of predicted destruction probabilities",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		EncodeFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "encode_fallbacks_total",
			Help: "Total number of unseen categorical values encoded as Unknown",
		}),
		EncodeDefaults: factory.NewCounter(prometheus.CounterOpts{
			Name: "encode_defaults_total",
			Help: "Total number of unseen categorical values encoded as the default code",
		}),
		TrainingRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "training_runs_total",
			Help: "Total number of successful training runs",
		}),
		TrainingFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "training_failures_total",
			Help: "Total number of failed training runs",
		}),
		TrainingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "training_duration_seconds",
			Help:    "Training run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		ModelAUC: factory.NewGauge(prometheus.GaugeOpts{
			Name: "model_auc",
			Help: "Area under the ROC curve of the current model",
		}),
		ModelAge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "model_age_seconds",
			Help: "Age of the current model in seconds",
		}),
		RecordsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "records_ingested_total",
			Help: "Total number of dataset records loaded",
		}),
	}
}
