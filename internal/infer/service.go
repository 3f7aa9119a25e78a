// Package infer scores building scenarios against a trained model
// artifact. A service wraps exactly one artifact; its lifecycle is owned
// by the caller, and a new artifact means constructing a new service.
package infer

import (
	"time"

	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/artifact"
	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/encode"
)

// Risk tiers for presentation. The thresholds are fixed display
// conventions, not model semantics.
const (
	RiskLow      = "Low Risk"
	RiskModerate = "Moderate Risk"
	RiskHigh     = "High Risk"
)

// MetricsInterface defines the metrics methods needed by the service.
type MetricsInterface interface {
	PredictionsInc()
	PredictionLatencyObserve(float64)
	PredictionScoresObserve(float64)
	EncodeFallbacksInc()
	EncodeDefaultsInc()
}

// Service answers destruction-probability queries for one model artifact.
// It is immutable after construction and safe for concurrent use.
type Service struct {
	art     *artifact.Artifact
	builder *encode.VectorBuilder
	metrics MetricsInterface
}

// New constructs a service from a model artifact. The artifact's stored
// feature-column order is used verbatim; it is never re-derived, so
// training-time and inference-time vectors stay aligned. metrics may be nil.
func New(art *artifact.Artifact, metrics MetricsInterface) (*Service, error) {
	if art == nil {
		return nil, artifact.ErrNoArtifact
	}
	if err := art.Validate(); err != nil {
		return nil, err
	}
	builder, err := encode.NewVectorBuilder(art.FeatureColumns, art.Encoders)
	if err != nil {
		return nil, err
	}
	return &Service{art: art, builder: builder, metrics: metrics}, nil
}

// Artifact returns the artifact backing this service.
func (s *Service) Artifact() *artifact.Artifact { return s.art }

// Predict returns the probability that the described structure would be
// destroyed (>50% damage). Missing or never-seen categorical values
// degrade through the encoder fallback; prediction never fails on them.
func (s *Service) Predict(scenario dataset.Scenario) float64 {
	start := time.Now()

	var tracker encode.MetricsTracker
	if s.metrics != nil {
		tracker = s.metrics
	}
	vec := s.builder.BuildWithMetrics(scenario.FeatureMap(), tracker)
	p := s.art.Model.PredictProba(vec)

	if s.metrics != nil {
		s.metrics.PredictionsInc()
		s.metrics.PredictionScoresObserve(p)
		s.metrics.PredictionLatencyObserve(time.Since(start).Seconds())
	}

	log.Debug().
		Str("model_version", s.art.Version).
		Float64("probability", p).
		Msg("scenario scored")
	return p
}

// RiskTier buckets a destruction probability into a qualitative display
// tier.
func RiskTier(probability float64) string {
	switch {
	case probability < 0.3:
		return RiskLow
	case probability < 0.6:
		return RiskModerate
	default:
		return RiskHigh
	}
}
