package cfg

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	DatasetPath   string
	DataPath      string
	ListenPort    int
	MetricsPort   int
	Estimators    int
	MaxDepth      int
	LearningRate  float64
	TestFraction  float64
	Seed          int64
	MinGroupCount int
}

type ConfigFile struct {
	Data struct {
		DatasetPath   string `yaml:"datasetPath"`
		DataPath      string `yaml:"dataPath"`
		MinGroupCount int    `yaml:"minGroupCount"`
	} `yaml:"data"`

	Model struct {
		Estimators   int     `yaml:"estimators"`
		MaxDepth     int     `yaml:"maxDepth"`
		LearningRate float64 `yaml:"learningRate"`
		TestFraction float64 `yaml:"testFraction"`
		Seed         int64   `yaml:"seed"`
	} `yaml:"model"`

	System struct {
		ListenPort  int `yaml:"listenPort"`
		MetricsPort int `yaml:"metricsPort"`
	} `yaml:"system"`
}

func Load() (Settings, error) {
	// Try to load from YAML file first
	if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
		return loadFromYAML(configPath)
	}

	// Fallback to environment variables
	return loadFromEnv()
}

func loadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings := Settings{
		DatasetPath:   getEnvOrDefault("DATASET_PATH", config.Data.DatasetPath),
		DataPath:      getEnvOrDefault("DATA_PATH", config.Data.DataPath),
		ListenPort:    getIntFromEnvOrConfig("LISTEN_PORT", config.System.ListenPort, 8090),
		MetricsPort:   getIntFromEnvOrConfig("METRICS_PORT", config.System.MetricsPort, 8080),
		Estimators:    getIntFromEnvOrConfig("ESTIMATORS", config.Model.Estimators, 100),
		MaxDepth:      getIntFromEnvOrConfig("MAX_DEPTH", config.Model.MaxDepth, 5),
		LearningRate:  getFloatFromEnvOrConfig("LEARNING_RATE", config.Model.LearningRate, 0.1),
		TestFraction:  getFloatFromEnvOrConfig("TEST_FRACTION", config.Model.TestFraction, 0.2),
		Seed:          getInt64FromEnvOrConfig("SEED", config.Model.Seed, 42),
		MinGroupCount: getIntFromEnvOrConfig("MIN_GROUP_COUNT", config.Data.MinGroupCount, 20),
	}
	applyDefaults(&settings)

	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return settings, nil
}

func loadFromEnv() (Settings, error) {
	settings := Settings{
		DatasetPath:   getEnvOrDefault("DATASET_PATH", "california-wildfire-data.csv"),
		DataPath:      getEnvOrDefault("DATA_PATH", "data"),
		ListenPort:    getIntOrDefault("LISTEN_PORT", 8090),
		MetricsPort:   getIntOrDefault("METRICS_PORT", 8080),
		Estimators:    getIntOrDefault("ESTIMATORS", 100),
		MaxDepth:      getIntOrDefault("MAX_DEPTH", 5),
		LearningRate:  getFloatOrDefault("LEARNING_RATE", 0.1),
		TestFraction:  getFloatOrDefault("TEST_FRACTION", 0.2),
		Seed:          getInt64OrDefault("SEED", 42),
		MinGroupCount: getIntOrDefault("MIN_GROUP_COUNT", 20),
	}

	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return settings, nil
}

func applyDefaults(s *Settings) {
	if s.DatasetPath == "" {
		s.DatasetPath = "california-wildfire-data.csv"
	}
	if s.DataPath == "" {
		s.DataPath = "data"
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64OrDefault(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntFromEnvOrConfig(key string, configValue, defaultValue int) int {
	if env := os.Getenv(key); env != "" {
		if val, err := strconv.Atoi(env); err == nil {
			return val
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

func getInt64FromEnvOrConfig(key string, configValue, defaultValue int64) int64 {
	if env := os.Getenv(key); env != "" {
		if val, err := strconv.ParseInt(env, 10, 64); err == nil {
			return val
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

func getFloatFromEnvOrConfig(key string, configValue, defaultValue float64) float64 {
	if env := os.Getenv(key); env != "" {
		if val, err := strconv.ParseFloat(env, 64); err == nil {
			return val
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

// validateSettings performs validation of configuration values.
func validateSettings(s *Settings) error {
	if s.DatasetPath == "" {
		return fmt.Errorf("dataset path cannot be empty")
	}
	if s.DataPath == "" {
		return fmt.Errorf("data path cannot be empty")
	}
	if s.ListenPort < 1024 || s.ListenPort > 65535 {
		return fmt.Errorf("listen port must be between 1024 and 65535, got %d", s.ListenPort)
	}
	if s.MetricsPort < 1024 || s.MetricsPort > 65535 {
		return fmt.Errorf("metrics port must be between 1024 and 65535, got %d", s.MetricsPort)
	}
	if s.ListenPort == s.MetricsPort {
		return fmt.Errorf("listen port and metrics port must differ, both are %d", s.ListenPort)
	}
	if s.Estimators <= 0 || s.Estimators > 5000 {
		return fmt.Errorf("estimators must be between 1 and 5000, got %d", s.Estimators)
	}
	if s.MaxDepth <= 0 || s.MaxDepth > 32 {
		return fmt.Errorf("max depth must be between 1 and 32, got %d", s.MaxDepth)
	}
	if s.LearningRate <= 0 || s.LearningRate > 1 {
		return fmt.Errorf("learning rate must be between 0 and 1, got %f", s.LearningRate)
	}
	if s.TestFraction <= 0 || s.TestFraction >= 0.5 {
		return fmt.Errorf("test fraction must be between 0 and 0.5, got %f", s.TestFraction)
	}
	if s.MinGroupCount < 1 {
		return fmt.Errorf("min group count must be at least 1, got %d", s.MinGroupCount)
	}
	return nil
}
