package logger

import (
	"path/filepath"
	"testing"

	"github.com/dbsmedya/logreport/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test-log.json")

	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name: "json format info level",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "text format debug level",
			cfg: &config.LoggingConfig{
				Level:  "debug",
				Format: "text",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "file output",
			cfg: &config.LoggingConfig{
				Level:  "warn",
				Format: "json",
				Output: logFile,
			},
			wantErr: false,
		},
		{
			name: "stdout output",
			cfg: &config.LoggingConfig{
				Level:  "error",
				Format: "text",
				Output: "stdout",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	if logger == nil {
		t.Fatal("NewDefault() returned nil")
	}

	// Should be able to log without panic
	logger.Info("test message")
	_ = logger.Sync()
}

func TestWithSource(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	srcLogger := logger.WithSource("access.log")
	if srcLogger == nil {
		t.Fatalf("WithSource() returned nil")
	}

	if srcLogger == logger {
		t.Error("WithSource() should return a new logger instance")
	}

	// Should be able to log without panic
	srcLogger.Info("test with source")
	_ = logger.Sync()
}

func TestWithReport(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	repLogger := logger.WithReport("average")
	if repLogger == nil {
		t.Fatalf("WithReport() returned nil")
	}

	// Should be able to log without panic
	repLogger.Info("test with report")
	_ = logger.Sync()
}

func TestWithFields(t *testing.T) {
	logger := NewDefault()

	fieldsLogger := logger.WithFields(map[string]interface{}{
		"files":   2,
		"records": 120,
	})
	if fieldsLogger == nil {
		t.Fatalf("WithFields() returned nil")
	}

	fieldsLogger.Info("test with fields")
	_ = logger.Sync()
}
