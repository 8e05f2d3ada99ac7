package main

import (
	"context"
	"log/slog"
	"testing"

	"pokedex-service/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestNewLoggerHonorsLogLevel(t *testing.T) {
	cfg := config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}}
	if !newLogger(cfg).Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected debug logging to be enabled")
	}

	cfg.Log.Level = "warn"
	if newLogger(cfg).Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info logging to be disabled at warn")
	}
}
