package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wms-platform/sla-service/internal/domain"
)

// Config holds application configuration
type Config struct {
	ServerAddr      string
	LogLevel        string
	Environment     string
	OTLPEndpoint    string
	TracingEnabled  bool
	RefreshInterval time.Duration
	MatrixFile      string
	LoadDemoOnStart bool
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		ServerAddr:      getEnv("SERVER_ADDR", ":8030"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled:  getEnv("TRACING_ENABLED", "true") == "true",
		RefreshInterval: getDurationEnv("SLA_REFRESH_INTERVAL", time.Minute),
		MatrixFile:      getEnv("SLA_MATRIX_FILE", ""),
		LoadDemoOnStart: getEnv("LOAD_DEMO_ORDERS", "false") == "true",
	}
}

// LoadMatrix returns the deadline matrix to start with. When MatrixFile is
// set it is read as a YAML platform -> carrier -> deadline mapping and
// validated; otherwise the built-in defaults apply.
func (c *Config) LoadMatrix() (domain.DeadlineMatrix, error) {
	if c.MatrixFile == "" {
		return domain.DefaultDeadlineMatrix(), nil
	}

	data, err := os.ReadFile(c.MatrixFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file %s: %w", c.MatrixFile, err)
	}

	var matrix domain.DeadlineMatrix
	if err := yaml.Unmarshal(data, &matrix); err != nil {
		return nil, fmt.Errorf("failed to parse matrix file %s: %w", c.MatrixFile, err)
	}
	if err := matrix.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix file %s: %w", c.MatrixFile, err)
	}

	return matrix, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
