package boost

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableData returns a dataset where feature 0 alone decides the label.
func separableData() ([][]float64, []float64) {
	x := [][]float64{
		{0, 1}, {0, 2}, {0, 0}, {0, 3}, {0, 1},
		{3, 2}, {3, 0}, {3, 1}, {3, 3}, {3, 2},
	}
	y := []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
	return x, y
}

func TestFitLearnsSeparableData(t *testing.T) {
	x, y := separableData()

	clf := New(Config{Estimators: 20, MaxDepth: 3, LearningRate: 0.1})
	require.NoError(t, clf.Fit(x, y))

	assert.Less(t, clf.PredictProba([]float64{0, 2}), 0.2)
	assert.Greater(t, clf.PredictProba([]float64{3, 2}), 0.8)
}

func TestFitIsDeterministic(t *testing.T) {
	x, y := separableData()

	a := New(DefaultConfig())
	b := New(DefaultConfig())
	require.NoError(t, a.Fit(x, y))
	require.NoError(t, b.Fit(x, y))

	probe := []float64{3, 1}
	assert.Equal(t, a.PredictProba(probe), b.PredictProba(probe))
	assert.Equal(t, a.FeatureImportances(), b.FeatureImportances())
}

func TestFitRejectsEmptyInput(t *testing.T) {
	clf := New(DefaultConfig())
	assert.ErrorIs(t, clf.Fit(nil, nil), ErrNoSamples)
}

func TestFitRejectsSingleClass(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}}

	clf := New(DefaultConfig())
	assert.ErrorIs(t, clf.Fit(x, []float64{1, 1, 1}), ErrSingleClass)
	assert.ErrorIs(t, clf.Fit(x, []float64{0, 0, 0}), ErrSingleClass)
}

func TestFitRejectsRaggedRows(t *testing.T) {
	x := [][]float64{{0, 1}, {1}}

	clf := New(DefaultConfig())
	assert.Error(t, clf.Fit(x, []float64{0, 1}))
}

func TestFeatureImportancesSumToOne(t *testing.T) {
	x, y := separableData()

	clf := New(Config{Estimators: 10, MaxDepth: 3})
	require.NoError(t, clf.Fit(x, y))

	imp := clf.FeatureImportances()
	require.Len(t, imp, 2)

	var sum float64
	for _, v := range imp {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// Feature 0 decides the label, so it must dominate.
	assert.Greater(t, imp[0], imp[1])
}

func TestPredictProbaBounds(t *testing.T) {
	x, y := separableData()

	clf := New(Config{Estimators: 50, MaxDepth: 5})
	require.NoError(t, clf.Fit(x, y))

	for _, row := range x {
		p := clf.PredictProba(row)
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestClassifierJSONRoundTrip(t *testing.T) {
	x, y := separableData()

	orig := New(Config{Estimators: 5, MaxDepth: 3})
	require.NoError(t, orig.Fit(x, y))

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var restored Classifier
	require.NoError(t, json.Unmarshal(data, &restored))

	for _, row := range x {
		assert.Equal(t, orig.PredictProba(row), restored.PredictProba(row))
	}
	assert.Equal(t, orig.FeatureImportances(), restored.FeatureImportances())
}

func TestConfigDefaults(t *testing.T) {
	clf := New(Config{})
	assert.Equal(t, DefaultConfig(), clf.Cfg)
}
