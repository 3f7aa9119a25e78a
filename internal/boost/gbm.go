// Package boost implements a gradient-boosted decision-tree binary
// classifier. It is the probabilistic-classifier capability consumed by
// the training pipeline and the inference service; the rest of the system
// only touches Fit, PredictProba and FeatureImportances, so the
// implementation is swappable.
//
// Fitting is deterministic: no subsampling, exhaustive split search, and
// stable tie-breaking.
package boost

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSamples is returned when Fit is called with an empty dataset.
	ErrNoSamples = errors.New("boost: no training samples")
	// ErrSingleClass is returned when the training labels contain fewer
	// than two distinct classes.
	ErrSingleClass = errors.New("boost: training labels contain a single class")
)

// Config holds the boosting hyperparameters.
type Config struct {
	Estimators   int     `json:"estimators" yaml:"estimators"`
	MaxDepth     int     `json:"max_depth" yaml:"maxDepth"`
	LearningRate float64 `json:"learning_rate" yaml:"learningRate"`
}

// DefaultConfig returns the standard hyperparameters: 100 estimators of
// depth 5 with learning rate 0.1.
func DefaultConfig() Config {
	return Config{Estimators: 100, MaxDepth: 5, LearningRate: 0.1}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Estimators <= 0 {
		c.Estimators = d.Estimators
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = d.MaxDepth
	}
	if c.LearningRate <= 0 {
		c.LearningRate = d.LearningRate
	}
	return c
}

// Classifier is a fitted gradient-boosted ensemble. All fields are
// exported for JSON serialization inside the model artifact; the
// classifier is immutable after Fit and safe for concurrent prediction.
type Classifier struct {
	Cfg         Config    `json:"config"`
	Bias        float64   `json:"bias"` // initial log-odds
	Trees       []*node   `json:"trees"`
	Gains       []float64 `json:"gains"` // total split gain per feature
	NumFeatures int       `json:"num_features"`
}

// New creates an unfitted classifier, applying defaults for zero-valued
// hyperparameters.
func New(cfg Config) *Classifier {
	return &Classifier{Cfg: cfg.withDefaults()}
}

// Fit trains the ensemble on the encoded feature matrix and binary labels
// (0 or 1). It requires at least one sample of each class.
func (c *Classifier) Fit(x [][]float64, y []float64) error {
	n := len(x)
	if n == 0 || len(y) != n {
		return ErrNoSamples
	}
	dim := len(x[0])
	var positives int
	for i, row := range x {
		if len(row) != dim {
			return fmt.Errorf("boost: row %d has %d features, expected %d", i, len(row), dim)
		}
		if y[i] > 0.5 {
			positives++
		}
	}
	if positives == 0 || positives == n {
		return ErrSingleClass
	}

	c.NumFeatures = dim
	c.Gains = make([]float64, dim)
	c.Trees = make([]*node, 0, c.Cfg.Estimators)

	p := float64(positives) / float64(n)
	c.Bias = math.Log(p / (1 - p))

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = c.Bias
	}

	grad := make([]float64, n)
	hess := make([]float64, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for m := 0; m < c.Cfg.Estimators; m++ {
		for i := 0; i < n; i++ {
			pi := sigmoid(raw[i])
			grad[i] = y[i] - pi
			hess[i] = pi * (1 - pi)
		}

		tb := &treeBuilder{
			x:        x,
			grad:     grad,
			hess:     hess,
			maxDepth: c.Cfg.MaxDepth,
			lr:       c.Cfg.LearningRate,
			gains:    c.Gains,
		}
		tree := tb.build(idx, 0)
		c.Trees = append(c.Trees, tree)

		for i := 0; i < n; i++ {
			raw[i] += tree.eval(x[i])
		}
	}
	return nil
}

// PredictProba returns the probability of the positive (destroyed) class
// for one encoded feature vector.
func (c *Classifier) PredictProba(x []float64) float64 {
	s := c.Bias
	for _, t := range c.Trees {
		s += t.eval(x)
	}
	return sigmoid(s)
}

// FeatureImportances returns the per-feature share of total split gain.
// The values are non-negative and sum to 1 when any split occurred.
func (c *Classifier) FeatureImportances() []float64 {
	out := make([]float64, len(c.Gains))
	var total float64
	for _, g := range c.Gains {
		total += g
	}
	if total == 0 {
		return out
	}
	for i, g := range c.Gains {
		out[i] = g / total
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
