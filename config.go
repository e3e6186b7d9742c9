package main

import (
	"fmt"
	"os"
	"time"

	"forca/internal/engine"

	"golang.org/x/time/rate"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       string
	WordsFile      string
	SessionTimeout time.Duration
	SweepInterval  time.Duration
	CookieMaxAge   time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
}

// loadConfig reads Config from the environment, falling back to defaults for
// unset or malformed values.
func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		IsProduction:   os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		SweepInterval:  getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		StaticCacheAge: getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// loadWordBank reads cfg.WordsFile, or the embedded bank when it is unset.
func (cfg Config) loadWordBank() (*engine.WordBank, error) {
	if cfg.WordsFile == "" {
		return engine.DefaultWordBank()
	}
	bank, err := engine.LoadWordBank(cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("words file %s: %w", cfg.WordsFile, err)
	}
	return bank, nil
}

// newApp builds an App around bank. rng may be nil.
func newApp(cfg Config, bank *engine.WordBank, rng engine.RandSource) *App {
	return &App{
		WordBank:       bank,
		Rand:           rng,
		Sessions:       make(map[string]*playerSession),
		LimiterMap:     make(map[string]*rate.Limiter),
		IsProduction:   cfg.IsProduction,
		CookieMaxAge:   cfg.CookieMaxAge,
		SessionTimeout: cfg.SessionTimeout,
		SweepInterval:  cfg.SweepInterval,
		StaticCacheAge: cfg.StaticCacheAge,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		StartTime:      time.Now(),
	}
}
