package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "HTTP_PORT", "SHUTDOWN_TIMEOUT", "PAYMENT_PROCESSING_DELAY", "FX_STRICT_RATES",
		"LIQUIDITY_HISTORY_DAYS", "LIQUIDITY_MAX_POINTS", "FORECAST_PATHS", "SESSION_IDLE_TTL",
		"RANDOM_SEED", "CONFIG_PATH",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.ProcessingDelay != 2*time.Second {
		t.Fatalf("expected 2s processing delay, got %s", cfg.ProcessingDelay)
	}
	if cfg.HistoryDays != 30 || cfg.MaxLiquidityPoints != 1000 || cfg.ForecastPaths != 2 {
		t.Fatalf("unexpected liquidity defaults: %+v", cfg)
	}
	if cfg.StrictFxRates {
		t.Fatal("expected lenient fx rates by default")
	}
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
service:
  env: dev
  http_port: 9000
payments:
  processing_delay: 250ms
  strict_fx_rates: true
liquidity:
  history_days: 14
session:
  random_seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %s", cfg.Env)
	}
	if cfg.HTTPPort != 9100 {
		t.Fatalf("expected env override port 9100, got %d", cfg.HTTPPort)
	}
	if cfg.ProcessingDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms delay, got %s", cfg.ProcessingDelay)
	}
	if !cfg.StrictFxRates {
		t.Fatal("expected strict fx rates from file")
	}
	if cfg.HistoryDays != 14 {
		t.Fatalf("expected 14 history days, got %d", cfg.HistoryDays)
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.RandomSeed)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FORECAST_PATHS")

	if err := os.WriteFile(".env", []byte("FORECAST_PATHS=4\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("FORECAST_PATHS") })

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.ForecastPaths != 4 {
		t.Fatalf("expected 4 forecast paths from .env, got %d", cfg.ForecastPaths)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIQUIDITY_HISTORY_DAYS", "0")

	_, err := config.Load("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "history days") {
		t.Fatalf("expected history days error, got %v", err)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYMENT_PROCESSING_DELAY", "soon")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected duration parse error")
	}
}

func TestLoadRejectsTooManyForecastPaths(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_PATHS", "11")

	_, err := config.Load("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "forecast paths must be between 1 and 10") {
		t.Fatalf("expected forecast paths error, got %v", err)
	}
}
