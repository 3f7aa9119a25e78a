package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire-risk/internal/dataset"
	"wildfire-risk/internal/infer"
	"wildfire-risk/internal/train"
)

func testService(t *testing.T) *infer.Service {
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

	svc, err := infer.New(art, nil)
	require.NoError(t, err)
	return svc
}

func doRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestPredictEndpoint(t *testing.T) {
	srv := New(testService(t), 0)

	w := doRequest(t, srv, http.MethodPost, "/predict", PredictionRequest{
		Scenario:  dataset.Scenario{RoofConstruction: "Wood", County: "Butte"},
		RequestID: "req-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Greater(t, resp.Probability, 0.6)
	assert.Equal(t, infer.RiskHigh, resp.Risk)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.NotEmpty(t, resp.ModelVersion)
}

func TestPredictRejectsBadInput(t *testing.T) {
	srv := New(testService(t), 0)

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/predict", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPredictWithoutModel(t *testing.T) {
	srv := New(nil, 0)

	w := doRequest(t, srv, http.MethodPost, "/predict", PredictionRequest{})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(testService(t), 0)

	w := doRequest(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Healthy)
	assert.NotEmpty(t, resp.ModelVersion)
}

func TestHealthWithoutModel(t *testing.T) {
	srv := New(nil, 0)

	w := doRequest(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Healthy)
	assert.NotEmpty(t, resp.Reason)
}

func TestModelInfoEndpoint(t *testing.T) {
	srv := New(testService(t), 0)

	w := doRequest(t, srv, http.MethodGet, "/model/info", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "auc")
	assert.Contains(t, info, "importances")
}

func TestStatsEndpoint(t *testing.T) {
	srv := New(testService(t), 0)

	w := doRequest(t, srv, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/stats?feature=roof_construction", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/stats?feature=nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCountiesEndpoint(t *testing.T) {
	srv := New(nil, 0)

	w := doRequest(t, srv, http.MethodGet, "/counties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counties []struct {
		Name     string `json:"name"`
		Centroid struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"centroid"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&counties))
	assert.NotEmpty(t, counties)
	for _, c := range counties {
		assert.NotEmpty(t, c.Name)
		assert.NotZero(t, c.Centroid.Lat)
	}
}

func TestVocabEndpoint(t *testing.T) {
	srv := New(nil, 0)

	w := doRequest(t, srv, http.MethodGet, "/vocab", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var vocab struct {
		Columns []string            `json:"columns"`
		Options map[string][]string `json:"options"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&vocab))
	assert.Equal(t, dataset.FeatureColumns, vocab.Columns)
	assert.Contains(t, vocab.Options, "roof_construction")
}
