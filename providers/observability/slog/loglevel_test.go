package slog

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"Debug uppercase", "DEBUG", slog.LevelDebug},
		{"Debug lowercase", "debug", slog.LevelDebug},
		{"Debug mixed case", "DeBuG", slog.LevelDebug},
		{"Info uppercase", "INFO", slog.LevelInfo},
		{"Info lowercase", "info", slog.LevelInfo},
		{"Warn uppercase", "WARN", slog.LevelWarn},
		{"Warning spelled out", "WARNING", slog.LevelWarn},
		{"Error uppercase", "ERROR", slog.LevelError},
		{"Error lowercase", "error", slog.LevelError},
		{"Unknown value", "UNKNOWN", slog.LevelInfo},
		{"Empty string", "", slog.LevelInfo},
		{"With whitespace", "  DEBUG  ", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name           string
		parleyLogLevel string
		logLevel       string
		expected       slog.Level
	}{
		{"PARLEY_LOG_LEVEL takes precedence", "DEBUG", "ERROR", slog.LevelDebug},
		{"Fallback to LOG_LEVEL", "", "WARN", slog.LevelWarn},
		{"Neither set defaults to info", "", "", slog.LevelInfo},
		{"Only PARLEY_LOG_LEVEL", "ERROR", "", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PARLEY_LOG_LEVEL", tt.parleyLogLevel)
			t.Setenv("LOG_LEVEL", tt.logLevel)

			result := GetLogLevelFromEnv()
			if result != tt.expected {
				t.Errorf("GetLogLevelFromEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
		{slog.Level(2), "LEVEL(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := LogLevelString(tt.level); got != tt.expected {
				t.Errorf("LogLevelString(%v) = %q, want %q", tt.level, got, tt.expected)
			}
		})
	}
}
