package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnv                = "local"
	defaultHTTPPort           = 8080
	defaultProcessingDelay    = 2 * time.Second
	defaultHistoryDays        = 30
	defaultForecastPaths      = 2
	defaultMaxLiquidityPoints = 1000
	defaultSessionIdleTTL     = 30 * time.Minute
	defaultShutdownTimeout    = 10 * time.Second
)

type Config struct {
	Env                string
	HTTPPort           int
	ShutdownTimeout    time.Duration
	ProcessingDelay    time.Duration
	StrictFxRates      bool
	HistoryDays        int
	MaxLiquidityPoints int
	ForecastPaths      int
	SessionIdleTTL     time.Duration
	RandomSeed         int64
}

// configFile mirrors configs/default.yaml.
type configFile struct {
	Service struct {
		Env             string `yaml:"env"`
		HTTPPort        int    `yaml:"http_port"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"service"`
	Payments struct {
		ProcessingDelay string `yaml:"processing_delay"`
		StrictFxRates   *bool  `yaml:"strict_fx_rates"`
	} `yaml:"payments"`
	Liquidity struct {
		HistoryDays   int `yaml:"history_days"`
		MaxPoints     int `yaml:"max_points"`
		ForecastPaths int `yaml:"forecast_paths"`
	} `yaml:"liquidity"`
	Session struct {
		IdleTTL    string `yaml:"idle_ttl"`
		RandomSeed int64  `yaml:"random_seed"`
	} `yaml:"session"`
}

func Default() Config {
	return Config{
		Env:                defaultEnv,
		HTTPPort:           defaultHTTPPort,
		ShutdownTimeout:    defaultShutdownTimeout,
		ProcessingDelay:    defaultProcessingDelay,
		HistoryDays:        defaultHistoryDays,
		MaxLiquidityPoints: defaultMaxLiquidityPoints,
		ForecastPaths:      defaultForecastPaths,
		SessionIdleTTL:     defaultSessionIdleTTL,
	}
}

// Load resolves configuration in priority order: defaults, file, env.
// A .env file in the working directory is loaded into the environment first
// when present. An empty path falls back to CONFIG_PATH.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []string

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, "http port must be between 1 and 65535")
	}
	if c.ProcessingDelay < 0 {
		errs = append(errs, "processing delay cannot be negative")
	}
	if c.HistoryDays <= 0 {
		errs = append(errs, "history days must be greater than zero")
	}
	if c.MaxLiquidityPoints <= 0 {
		errs = append(errs, "max liquidity points must be greater than zero")
	}
	if c.ForecastPaths <= 0 || c.ForecastPaths > domain.MaxForecastPaths {
		errs = append(errs, fmt.Sprintf("forecast paths must be between 1 and %d", domain.MaxForecastPaths))
	}
	if c.SessionIdleTTL <= 0 {
		errs = append(errs, "session idle ttl must be greater than zero")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "shutdown timeout must be greater than zero")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var file configFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if v := strings.TrimSpace(file.Service.Env); v != "" {
		cfg.Env = v
	}
	if file.Service.HTTPPort != 0 {
		cfg.HTTPPort = file.Service.HTTPPort
	}
	if err := setDuration(&cfg.ShutdownTimeout, file.Service.ShutdownTimeout, "service.shutdown_timeout"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ProcessingDelay, file.Payments.ProcessingDelay, "payments.processing_delay"); err != nil {
		return err
	}
	if file.Payments.StrictFxRates != nil {
		cfg.StrictFxRates = *file.Payments.StrictFxRates
	}
	if file.Liquidity.HistoryDays != 0 {
		cfg.HistoryDays = file.Liquidity.HistoryDays
	}
	if file.Liquidity.MaxPoints != 0 {
		cfg.MaxLiquidityPoints = file.Liquidity.MaxPoints
	}
	if file.Liquidity.ForecastPaths != 0 {
		cfg.ForecastPaths = file.Liquidity.ForecastPaths
	}
	if err := setDuration(&cfg.SessionIdleTTL, file.Session.IdleTTL, "session.idle_ttl"); err != nil {
		return err
	}
	if file.Session.RandomSeed != 0 {
		cfg.RandomSeed = file.Session.RandomSeed
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := getEnv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if err := envInt(&cfg.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := envDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}
	if err := envDuration(&cfg.ProcessingDelay, "PAYMENT_PROCESSING_DELAY"); err != nil {
		return err
	}
	if v := getEnv("FX_STRICT_RATES"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FX_STRICT_RATES must be a boolean: %w", err)
		}
		cfg.StrictFxRates = parsed
	}
	if err := envInt(&cfg.HistoryDays, "LIQUIDITY_HISTORY_DAYS"); err != nil {
		return err
	}
	if err := envInt(&cfg.MaxLiquidityPoints, "LIQUIDITY_MAX_POINTS"); err != nil {
		return err
	}
	if err := envInt(&cfg.ForecastPaths, "FORECAST_PATHS"); err != nil {
		return err
	}
	if err := envDuration(&cfg.SessionIdleTTL, "SESSION_IDLE_TTL"); err != nil {
		return err
	}
	if v := getEnv("RANDOM_SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RANDOM_SEED must be an integer: %w", err)
		}
		cfg.RandomSeed = parsed
	}

	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(target *int, key string) error {
	v := getEnv(key)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*target = parsed
	return nil
}

func envDuration(target *time.Duration, key string) error {
	return setDuration(target, getEnv(key), key)
}

func setDuration(target *time.Duration, raw string, name string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s must be a duration: %w", name, err)
	}
	*target = parsed
	return nil
}
