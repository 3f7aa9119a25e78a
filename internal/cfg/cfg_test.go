package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "DATASET_PATH", "DATA_PATH", "LISTEN_PORT", "METRICS_PORT",
		"ESTIMATORS", "MAX_DEPTH", "LEARNING_RATE", "TEST_FRACTION", "SEED", "MIN_GROUP_COUNT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "california-wildfire-data.csv", s.DatasetPath)
	assert.Equal(t, "data", s.DataPath)
	assert.Equal(t, 8090, s.ListenPort)
	assert.Equal(t, 8080, s.MetricsPort)
	assert.Equal(t, 100, s.Estimators)
	assert.Equal(t, 5, s.MaxDepth)
	assert.Equal(t, 0.1, s.LearningRate)
	assert.Equal(t, 0.2, s.TestFraction)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 20, s.MinGroupCount)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATASET_PATH", "other.xlsx")
	t.Setenv("LISTEN_PORT", "9100")
	t.Setenv("ESTIMATORS", "250")
	t.Setenv("LEARNING_RATE", "0.05")
	t.Setenv("SEED", "7")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "other.xlsx", s.DatasetPath)
	assert.Equal(t, 9100, s.ListenPort)
	assert.Equal(t, 250, s.Estimators)
	assert.Equal(t, 0.05, s.LearningRate)
	assert.Equal(t, int64(7), s.Seed)
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	content := `
data:
  datasetPath: inspections.csv
  dataPath: /var/lib/wildfire
  minGroupCount: 30
model:
  estimators: 200
  maxDepth: 4
  learningRate: 0.05
  testFraction: 0.25
  seed: 99
system:
  listenPort: 9000
  metricsPort: 9001
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inspections.csv", s.DatasetPath)
	assert.Equal(t, "/var/lib/wildfire", s.DataPath)
	assert.Equal(t, 30, s.MinGroupCount)
	assert.Equal(t, 200, s.Estimators)
	assert.Equal(t, 4, s.MaxDepth)
	assert.Equal(t, 0.05, s.LearningRate)
	assert.Equal(t, 0.25, s.TestFraction)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 9000, s.ListenPort)
	assert.Equal(t, 9001, s.MetricsPort)
}

func TestEnvBeatsYAML(t *testing.T) {
	clearEnv(t)

	content := "model:\n  estimators: 200\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("ESTIMATORS", "50")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, s.Estimators)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateSettings(t *testing.T) {
	valid := Settings{
		DatasetPath:   "data.csv",
		DataPath:      "data",
		ListenPort:    8090,
		MetricsPort:   8080,
		Estimators:    100,
		MaxDepth:      5,
		LearningRate:  0.1,
		TestFraction:  0.2,
		Seed:          42,
		MinGroupCount: 20,
	}
	require.NoError(t, validateSettings(&valid))

	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty dataset path", func(s *Settings) { s.DatasetPath = "" }},
		{"empty data path", func(s *Settings) { s.DataPath = "" }},
		{"privileged listen port", func(s *Settings) { s.ListenPort = 80 }},
		{"port collision", func(s *Settings) { s.MetricsPort = s.ListenPort }},
		{"zero estimators", func(s *Settings) { s.Estimators = 0 }},
		{"excessive depth", func(s *Settings) { s.MaxDepth = 64 }},
		{"learning rate above one", func(s *Settings) { s.LearningRate = 1.5 }},
		{"test fraction too large", func(s *Settings) { s.TestFraction = 0.5 }},
		{"zero min group count", func(s *Settings) { s.MinGroupCount = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			assert.Error(t, validateSettings(&s))
		})
	}
}
