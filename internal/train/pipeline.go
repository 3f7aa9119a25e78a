// Package train implements the offline training pipeline: target
// derivation, encoder fitting, stratified splitting, classifier fitting
// and evaluation. One run produces one immutable model artifact.
package train

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"wildfire-risk/internal/artifact"
	"wildfire-risk/internal/boost"
	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/encode"
	"wildfire-risk/internal/stats"
)

// Training precondition failures. None of these produce a partial artifact.
var (
	ErrNoRecords     = errors.New("train: no records after filtering inaccessible damage")
	ErrSingleClass   = errors.New("train: records contain fewer than two target classes")
	ErrClassTooSmall = errors.New("train: a target class has too few records for a stratified split")
)

// MetricsInterface defines the metrics methods needed by the pipeline.
type MetricsInterface interface {
	TrainingRunsInc()
	TrainingFailuresInc()
	TrainingDurationObserve(float64)
	ModelAUCSet(float64)
}

// Config holds the training hyperparameters.
type Config struct {
	Estimators    int
	MaxDepth      int
	LearningRate  float64
	TestFraction  float64
	Seed          int64
	MinGroupCount int
}

// DefaultConfig mirrors the hyperparameters of the historical runs:
// 100 estimators, depth 5, 80/20 split, seed 42.
func DefaultConfig() Config {
	return Config{
		Estimators:    100,
		MaxDepth:      5,
		LearningRate:  0.1,
		TestFraction:  0.2,
		Seed:          42,
		MinGroupCount: stats.MinSampleCount,
	}
}

// Pipeline runs training end to end. It is a one-shot batch computation;
// concurrent runs produce independent artifacts.
type Pipeline struct {
	cfg     Config
	metrics MetricsInterface
}

// New creates a pipeline. metrics may be nil.
func New(cfg Config, metrics MetricsInterface) *Pipeline {
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		cfg.TestFraction = 0.2
	}
	if cfg.MinGroupCount <= 0 {
		cfg.MinGroupCount = stats.MinSampleCount
	}
	return &Pipeline{cfg: cfg, metrics: metrics}
}

// Run trains a classifier on the given records and returns the resulting
// artifact. Inaccessible records are excluded before any processing.
func (p *Pipeline) Run(records []dataset.Record) (*artifact.Artifact, error) {
	start := time.Now()
	art, err := p.run(records)
	if p.metrics != nil {
		p.metrics.TrainingDurationObserve(time.Since(start).Seconds())
		if err != nil {
			p.metrics.TrainingFailuresInc()
		} else {
			p.metrics.TrainingRunsInc()
			p.metrics.ModelAUCSet(art.AUC)
		}
	}
	return art, err
}

func (p *Pipeline) run(records []dataset.Record) (*artifact.Artifact, error) {
	records = dataset.FilterAccessible(records)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	// Fit one encoder per feature column over the full record set.
	encoders := make(map[string]*encode.Encoder, len(dataset.FeatureColumns))
	values := make([]string, len(records))
	for _, col := range dataset.FeatureColumns {
		for i := range records {
			values[i] = records[i].Value(col)
		}
		encoders[col] = encode.Fit(values)
	}

	builder, err := encode.NewVectorBuilder(dataset.FeatureColumns, encoders)
	if err != nil {
		return nil, err
	}

	x := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i := range records {
		x[i] = builder.Build(records[i].FeatureMap())
		if records[i].Destroyed() {
			y[i] = 1
		}
	}

	trainIdx, testIdx, err := stratifiedSplit(y, p.cfg.TestFraction, p.cfg.Seed)
	if err != nil {
		return nil, err
	}

	clf := boost.New(boost.Config{
		Estimators:   p.cfg.Estimators,
		MaxDepth:     p.cfg.MaxDepth,
		LearningRate: p.cfg.LearningRate,
	})

	xTrain := make([][]float64, len(trainIdx))
	yTrain := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		xTrain[i] = x[idx]
		yTrain[i] = y[idx]
	}
	if err := clf.Fit(xTrain, yTrain); err != nil {
		if errors.Is(err, boost.ErrSingleClass) {
			return nil, ErrSingleClass
		}
		return nil, fmt.Errorf("train: classifier fit failed: %w", err)
	}

	scores := make([]float64, len(testIdx))
	labels := make([]bool, len(testIdx))
	for i, idx := range testIdx {
		scores[i] = clf.PredictProba(x[idx])
		labels[i] = y[idx] > 0.5
	}
	auc := rocAUC(scores, labels)

	importances := make(map[string]float64, len(dataset.FeatureColumns))
	for i, imp := range clf.FeatureImportances() {
		importances[dataset.FeatureColumns[i]] = imp
	}

	now := time.Now()
	art := &artifact.Artifact{
		Version:        artifact.NewVersion(now),
		CreatedAt:      now,
		FeatureColumns: append([]string(nil), dataset.FeatureColumns...),
		Encoders:       encoders,
		Model:          clf,
		AUC:            auc,
		Importances:    importances,
		Stats:          stats.Destruction(records, p.cfg.MinGroupCount),
		TrainSamples:   len(trainIdx),
		TestSamples:    len(testIdx),
	}

	log.Info().
		Str("version", art.Version).
		Float64("auc", auc).
		Int("train_samples", art.TrainSamples).
		Int("test_samples", art.TestSamples).
		Msg("training run complete")
	return art, nil
}

// stratifiedSplit partitions sample indices so the class ratio is
// preserved in both partitions. The shuffle is seeded, so repeated runs on
// identical input produce identical partitions.
func stratifiedSplit(y []float64, testFraction float64, seed int64) (trainIdx, testIdx []int, err error) {
	var pos, neg []int
	for i, label := range y {
		if label > 0.5 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return nil, nil, ErrSingleClass
	}
	if len(pos) < 2 || len(neg) < 2 {
		return nil, nil, ErrClassTooSmall
	}

	rng := rand.New(rand.NewSource(seed))
	for _, class := range [][]int{neg, pos} {
		rng.Shuffle(len(class), func(a, b int) { class[a], class[b] = class[b], class[a] })
		nTest := int(float64(len(class)) * testFraction)
		if nTest < 1 {
			nTest = 1
		}
		testIdx = append(testIdx, class[:nTest]...)
		trainIdx = append(trainIdx, class[nTest:]...)
	}
	sort.Ints(trainIdx)
	sort.Ints(testIdx)
	return trainIdx, testIdx, nil
}

// rocAUC computes the area under the ROC curve for predicted positive
// probabilities against true labels.
func rocAUC(scores []float64, positive []bool) float64 {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] < scores[order[b]] })

	sorted := make([]float64, len(scores))
	classes := make([]bool, len(scores))
	for i, idx := range order {
		sorted[i] = scores[idx]
		classes[i] = positive[idx]
	}

	tpr, fpr, _ := stat.ROC(nil, sorted, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
