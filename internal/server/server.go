// Package server exposes the destruction-prediction HTTP API consumed by
// presentation collaborators.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/geo"
	"wildfire-risk/internal/infer"
)

// Server serves predictions for one inference service. The service may be
// nil when no model artifact exists yet; prediction requests then receive
// an explicit "no model available" response instead of a crash.
type Server struct {
	svc    *infer.Service
	server *http.Server
}

// PredictionRequest is the incoming scoring request: the scenario fields
// plus an optional request id echoed back in the response.
type PredictionRequest struct {
	dataset.Scenario
	RequestID string `json:"request_id,omitempty"`
}

// PredictionResponse is the scoring result.
type PredictionResponse struct {
	Probability  float64   `json:"probability"`
	Risk         string    `json:"risk"`
	ModelVersion string    `json:"model_version"`
	AUC          float64   `json:"auc"`
	RequestID    string    `json:"request_id,omitempty"`
	Latency      float64   `json:"latency_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Healthy      bool   `json:"healthy"`
	ModelVersion string `json:"model_version,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// New creates a server on the given port. svc may be nil.
func New(svc *infer.Service, port int) *Server {
	s := &Server{svc: svc}

	mux := http.NewServeMux()
	mux.HandleFunc("/predict", s.handlePredict)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/model/info", s.handleModelInfo)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/counties", s.handleCounties)
	mux.HandleFunc("/vocab", s.handleVocab)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("starting prediction server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the underlying handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.svc == nil {
		http.Error(w, "no model available", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()

	var req PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	probability := s.svc.Predict(req.Scenario)
	art := s.svc.Artifact()

	resp := PredictionResponse{
		Probability:  probability,
		Risk:         infer.RiskTier(probability),
		ModelVersion: art.Version,
		AUC:          art.AUC,
		RequestID:    req.RequestID,
		Latency:      float64(time.Since(start).Microseconds()) / 1000,
		Timestamp:    time.Now(),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Healthy: s.svc != nil}
	status := http.StatusOK
	if s.svc != nil {
		resp.ModelVersion = s.svc.Artifact().Version
	} else {
		resp.Reason = "no trained model available"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	if s.svc == nil {
		http.Error(w, "no model available", http.StatusServiceUnavailable)
		return
	}
	art := s.svc.Artifact()
	info := map[string]interface{}{
		"version":         art.Version,
		"created_at":      art.CreatedAt,
		"auc":             art.AUC,
		"feature_columns": art.FeatureColumns,
		"importances":     art.Importances,
		"train_samples":   art.TrainSamples,
		"test_samples":    art.TestSamples,
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.svc == nil {
		http.Error(w, "no model available", http.StatusServiceUnavailable)
		return
	}
	allStats := s.svc.Artifact().Stats

	if feature := r.URL.Query().Get("feature"); feature != "" {
		featureStats, ok := allStats[feature]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown feature column: %s", feature), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, featureStats)
		return
	}
	writeJSON(w, http.StatusOK, allStats)
}

func (s *Server) handleCounties(w http.ResponseWriter, r *http.Request) {
	type county struct {
		Name     string       `json:"name"`
		Centroid geo.Centroid `json:"centroid"`
	}
	names := geo.Counties()
	out := make([]county, 0, len(names))
	for _, name := range names {
		c, _ := geo.CountyCentroid(name)
		out = append(out, county{Name: name, Centroid: c})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleVocab(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"columns": dataset.FeatureColumns,
		"options": dataset.FeatureOptions,
		"labels":  dataset.FeatureLabels,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
