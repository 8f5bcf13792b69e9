package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

type LLMConfig struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Enabled reports whether a text generator should be built.
func (c LLMConfig) Enabled() bool {
	return c.Provider != ProviderNone && c.APIKey != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type Config struct {
	Port           int
	GinMode        string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	LLM            LLMConfig
	Redis          RedisConfig
	AdviceCacheTTL time.Duration
	RateLimit      RateLimitConfig
	CurrencySymbol string
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the current environment only.
func FromEnv() (Config, error) {
	var errs []error

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))
	cfg := Config{
		Port:           getEnvInt("PORT", 8000, &errs),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LLM: LLMConfig{
			Provider:   provider,
			APIKey:     apiKey(provider),
			Model:      getEnv("LLM_MODEL", defaultModel(provider)),
			BaseURL:    getEnv("LLM_BASE_URL", ""),
			Timeout:    getEnvDuration("LLM_TIMEOUT", 10*time.Second, &errs),
			MaxRetries: getEnvInt("LLM_MAX_RETRIES", 1, &errs),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0, &errs),
		},
		AdviceCacheTTL: getEnvDuration("ADVICE_CACHE_TTL", time.Hour, &errs),
		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 30, &errs),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute, &errs),
		},
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode))
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderNone:
	default:
		errs = append(errs, fmt.Errorf("LLM_PROVIDER must be one of gemini, openai, none, got %q", c.LLM.Provider))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}
	if c.LLM.MaxRetries < 0 {
		errs = append(errs, errors.New("LLM_MAX_RETRIES must not be negative"))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}

func apiKey(provider string) string {
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		return v
	}
	switch provider {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return "gpt-4o-mini"
	}
	return "gemini-pro"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return fallback
	}
	return i
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
