// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, the SQLite path, the Telegram and exchange-rate API settings, and
// observability toggles.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// TelegramConfig holds the Bot API transport settings.
type TelegramConfig struct {
	Token         string        // TELEGRAM_BOT_TOKEN
	APIBase       string        // TELEGRAM_API_BASE
	WebhookSecret string        // TELEGRAM_WEBHOOK_SECRET (X-Telegram-Bot-Api-Secret-Token)
	Timeout       time.Duration // TELEGRAM_TIMEOUT
}

// RatesConfig holds the exchange-rate client settings: upstream endpoint,
// cache, retry policy, and circuit breaker.
type RatesConfig struct {
	APIBase          string        // RATES_API_BASE
	Timeout          time.Duration // RATES_TIMEOUT
	Retries          int           // RATES_RETRIES
	RetryDelay       time.Duration // RATES_RETRY_DELAY
	CacheTTL         time.Duration // RATES_CACHE_TTL
	CacheMaxEntries  int           // RATES_CACHE_MAX_ENTRIES
	BreakerThreshold int           // RATES_BREAKER_THRESHOLD
	BreakerCooldown  time.Duration // RATES_BREAKER_COOLDOWN
}

// KeyboardConfig holds the button material used by the command handlers.
type KeyboardConfig struct {
	PopularInputs     []string // KEYBOARD_POPULAR_INPUTS (CSV of currency codes)
	PopularOutputs    []string // KEYBOARD_POPULAR_OUTPUTS
	CommonAmounts     []string // KEYBOARD_COMMON_AMOUNTS
	Multipliers       []string // KEYBOARD_MULTIPLIERS
	MultiplierSymbols []string // KEYBOARD_MULTIPLIER_SYMBOLS
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging
	LogLevel  string // debug|info|warn|error|fatal|panic
	LogPretty bool   // pretty console logs in dev

	// App
	DBPath         string        // SQLite path
	GeocodeAPIBase string        // GEOCODE_API_BASE
	DedupeTTL      time.Duration // how long a processed update_id blocks replays

	// Rate limiting (inbound webhook)
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	Telegram TelegramConfig
	Rates    RatesConfig
	Keyboard KeyboardConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getbool("LOG_PRETTY", false),

		// App
		DBPath:         getenv("DB_PATH", "bot.db"),
		GeocodeAPIBase: getenv("GEOCODE_API_BASE", "https://api.bigdatacloud.net"),
		DedupeTTL:      getdur("DEDUPE_TTL", 24*time.Hour),

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		Telegram: TelegramConfig{
			Token:         getenv("TELEGRAM_BOT_TOKEN", ""),
			APIBase:       getenv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			WebhookSecret: getenv("TELEGRAM_WEBHOOK_SECRET", ""),
			Timeout:       getdur("TELEGRAM_TIMEOUT", 10*time.Second),
		},

		Rates: RatesConfig{
			APIBase:          getenv("RATES_API_BASE", "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest"),
			Timeout:          getdur("RATES_TIMEOUT", 10*time.Second),
			Retries:          getint("RATES_RETRIES", 3),
			RetryDelay:       getdur("RATES_RETRY_DELAY", time.Second),
			CacheTTL:         getdur("RATES_CACHE_TTL", 10*time.Minute),
			CacheMaxEntries:  getint("RATES_CACHE_MAX_ENTRIES", 64),
			BreakerThreshold: getint("RATES_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  getdur("RATES_BREAKER_COOLDOWN", 5*time.Minute),
		},

		Keyboard: KeyboardConfig{
			PopularInputs:     splitCSV(getenv("KEYBOARD_POPULAR_INPUTS", "SGD,USD,EUR,GBP,JPY")),
			PopularOutputs:    splitCSV(getenv("KEYBOARD_POPULAR_OUTPUTS", "MYR,USD,EUR,GBP,THB")),
			CommonAmounts:     splitCSV(getenv("KEYBOARD_COMMON_AMOUNTS", "1,10,50,100,500")),
			Multipliers:       splitCSV(getenv("KEYBOARD_MULTIPLIERS", "10,100,1000,0.1,0.01,0.001")),
			MultiplierSymbols: splitCSV(getenv("KEYBOARD_MULTIPLIER_SYMBOLS", "x10,x100,x1K,÷10,÷100,÷1K")),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "currency-coinverter-bot"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	cfg.Telegram.APIBase = strings.TrimRight(cfg.Telegram.APIBase, "/")
	cfg.Rates.APIBase = strings.TrimRight(cfg.Rates.APIBase, "/")
	cfg.GeocodeAPIBase = strings.TrimRight(cfg.GeocodeAPIBase, "/")

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.DedupeTTL <= 0 {
		return cfg, errors.New("DEDUPE_TTL must be > 0")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return cfg, errors.New("TELEGRAM_BOT_TOKEN must not be empty")
	}
	if cfg.Telegram.Timeout <= 0 {
		return cfg, errors.New("TELEGRAM_TIMEOUT must be > 0")
	}
	if cfg.Rates.Timeout <= 0 {
		return cfg, errors.New("RATES_TIMEOUT must be > 0")
	}
	if cfg.Rates.Retries < 1 {
		return cfg, errors.New("RATES_RETRIES must be >= 1")
	}
	if cfg.Rates.CacheTTL <= 0 {
		return cfg, errors.New("RATES_CACHE_TTL must be > 0")
	}
	if cfg.Rates.BreakerThreshold < 1 {
		return cfg, errors.New("RATES_BREAKER_THRESHOLD must be >= 1")
	}
	if cfg.Rates.BreakerCooldown <= 0 {
		return cfg, errors.New("RATES_BREAKER_COOLDOWN must be > 0")
	}
	if len(cfg.Keyboard.PopularInputs) == 0 || len(cfg.Keyboard.PopularOutputs) == 0 {
		return cfg, errors.New("keyboard currency lists must not be empty")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
