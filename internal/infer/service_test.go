package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire-risk/internal/artifact"
	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/train"
)

type mockMetrics struct {
	predictions int
	latencies   int
	scores      []float64
	fallbacks   int
	defaults    int
}

func (m *mockMetrics) PredictionsInc()                    { m.predictions++ }
func (m *mockMetrics) PredictionLatencyObserve(v float64) { m.latencies++ }
func (m *mockMetrics) PredictionScoresObserve(v float64)  { m.scores = append(m.scores, v) }
func (m *mockMetrics) EncodeFallbacksInc()                { m.fallbacks++ }
func (m *mockMetrics) EncodeDefaultsInc()                 { m.defaults++ }

func trainedArtifact(t *testing.T) *artifact.Artifact {
	t.Helper()

	records := make([]dataset.Record, 0, 60)
	for i := 0; i < 60; i++ {
		r := dataset.Record{County: "Butte"}
		if i%2 == 0 {
			r.RoofConstruction = "Wood"
			r.Damage = dataset.DamageDestroyed
		} else {
			r.RoofConstruction = "Metal"
			r.Damage = "No Damage"
		}
		records = append(records, r)
	}

	cfg := train.DefaultConfig()
	cfg.Estimators = 20
	cfg.MinGroupCount = 5
	art, err := train.New(cfg, nil).Run(records)
	require.NoError(t, err)
	return art
}

func TestNewRequiresArtifact(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, artifact.ErrNoArtifact)
}

func TestNewRejectsInvalidArtifact(t *testing.T) {
	art := trainedArtifact(t)
	art.Model = nil

	_, err := New(art, nil)
	assert.Error(t, err)
}

func TestPredictSeparatesRiskProfiles(t *testing.T) {
	svc, err := New(trainedArtifact(t), nil)
	require.NoError(t, err)

	wood := svc.Predict(dataset.Scenario{RoofConstruction: "Wood", County: "Butte"})
	metal := svc.Predict(dataset.Scenario{RoofConstruction: "Metal", County: "Butte"})

	assert.Greater(t, wood, 0.8)
	assert.Less(t, metal, 0.2)
}

func TestPredictIsIdempotent(t *testing.T) {
	svc, err := New(trainedArtifact(t), nil)
	require.NoError(t, err)

	s := dataset.Scenario{RoofConstruction: "Wood", County: "Butte"}
	assert.Equal(t, svc.Predict(s), svc.Predict(s))
}

func TestPredictHandlesEmptyScenario(t *testing.T) {
	svc, err := New(trainedArtifact(t), nil)
	require.NoError(t, err)

	p := svc.Predict(dataset.Scenario{})
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestPredictReportsMetrics(t *testing.T) {
	m := &mockMetrics{}
	svc, err := New(trainedArtifact(t), m)
	require.NoError(t, err)

	p := svc.Predict(dataset.Scenario{RoofConstruction: "Wood"})

	assert.Equal(t, 1, m.predictions)
	assert.Equal(t, 1, m.latencies)
	require.Len(t, m.scores, 1)
	assert.Equal(t, p, m.scores[0])
}

func TestRiskTier(t *testing.T) {
	assert.Equal(t, RiskLow, RiskTier(0))
	assert.Equal(t, RiskLow, RiskTier(0.29))
	assert.Equal(t, RiskModerate, RiskTier(0.3))
	assert.Equal(t, RiskModerate, RiskTier(0.59))
	assert.Equal(t, RiskHigh, RiskTier(0.6))
	assert.Equal(t, RiskHigh, RiskTier(1))
}
