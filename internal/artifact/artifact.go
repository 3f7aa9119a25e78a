// Package artifact defines the immutable bundle produced by one training
// run and a persistent store with latest-successful-run retrieval.
package artifact

import (
	"fmt"
	"time"

	"wildfire-risk/internal/boost"
	"wildfire-risk/internal/encode"
	"wildfire-risk/internal/stats"
)

// Artifact is the unit produced by one training run: the fitted
// classifier, the encoders it was trained with, the fixed feature-column
// order, and the evaluation/explainability outputs. Artifacts are created
// once, never mutated, and safe for unlimited concurrent read-only use.
type Artifact struct {
	Version        string                       `json:"version"`
	CreatedAt      time.Time                    `json:"created_at"`
	FeatureColumns []string                     `json:"feature_columns"`
	Encoders       map[string]*encode.Encoder   `json:"encoders"`
	Model          *boost.Classifier            `json:"model"`
	AUC            float64                      `json:"auc"`
	Importances    map[string]float64           `json:"importances"`
	Stats          map[string][]stats.ValueStat `json:"stats"`
	TrainSamples   int                          `json:"train_samples"`
	TestSamples    int                          `json:"test_samples"`
}

// NewVersion returns a sortable version identifier for a training run.
func NewVersion(t time.Time) string {
	return t.UTC().Format("20060102-150405")
}

// Validate checks the structural invariants an artifact must satisfy
// before it can serve inference.
func (a *Artifact) Validate() error {
	if a.Model == nil {
		return fmt.Errorf("artifact %s: missing classifier", a.Version)
	}
	if len(a.FeatureColumns) == 0 {
		return fmt.Errorf("artifact %s: missing feature column order", a.Version)
	}
	if a.Model.NumFeatures != len(a.FeatureColumns) {
		return fmt.Errorf("artifact %s: classifier expects %d features, column order has %d",
			a.Version, a.Model.NumFeatures, len(a.FeatureColumns))
	}
	for _, col := range a.FeatureColumns {
		if a.Encoders[col] == nil {
			return fmt.Errorf("artifact %s: missing encoder for column %q", a.Version, col)
		}
	}
	return nil
}
