package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SuperJobTokenEnv is the environment variable holding the SuperJob app key.
const SuperJobTokenEnv = "API_SUPERJOB"

const (
	defaultStoragePath = "vacancies.json"
	defaultSQLitePath  = "vacancies.db"
	defaultTimeout     = 15 * time.Second
	defaultUserAgent   = "vacancies/1.0"
	defaultHHBaseURL   = "https://api.hh.ru/"
	defaultSJBaseURL   = "https://api.superjob.ru/2.0/"
	defaultTopN        = 10
)

// Config is the root configuration for the vacancies CLI.
type Config struct {
	Storage   StorageConfig
	HTTP      HTTPConfig
	Providers ProvidersConfig
	Search    SearchConfig
	Logging   LoggingConfig
}

// StorageConfig selects where saved vacancies live.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`
}

// HTTPConfig tunes the shared HTTP client.
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// ProvidersConfig holds per-provider settings.
type ProvidersConfig struct {
	HH       HHConfig       `yaml:"hh"`
	SuperJob SuperJobConfig `yaml:"superjob"`
}

// HHConfig configures the HeadHunter source.
type HHConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SuperJobConfig configures the SuperJob source.
type SuperJobConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"` // falls back to $API_SUPERJOB
	OrderField     string `yaml:"order_field"`
	OrderDirection string `yaml:"order_direction"`
	PaymentFrom    int    `yaml:"payment_from"`
	PaymentTo      int    `yaml:"payment_to"`
}

// SearchConfig holds defaults for interactive searches.
type SearchConfig struct {
	TopN int `yaml:"top_n"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // "text" or "json"
}

// rawConfig is used for YAML unmarshaling (duration as string).
type rawConfig struct {
	Storage   StorageConfig   `yaml:"storage"`
	HTTP      rawHTTPConfig   `yaml:"http"`
	Providers ProvidersConfig `yaml:"providers"`
	Search    SearchConfig    `yaml:"search"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type rawHTTPConfig struct {
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Storage: StorageConfig{Backend: "json", Path: defaultStoragePath},
		HTTP:    HTTPConfig{Timeout: defaultTimeout, UserAgent: defaultUserAgent},
		Providers: ProvidersConfig{
			HH:       HHConfig{BaseURL: defaultHHBaseURL},
			SuperJob: SuperJobConfig{BaseURL: defaultSJBaseURL},
		},
		Search:  SearchConfig{TopN: defaultTopN},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
	cfg.Providers.SuperJob.APIKey = os.Getenv(SuperJobTokenEnv)
	return cfg
}

// Load reads and parses the YAML config file at path, fills defaults,
// validates it, and returns Config. A missing file yields an error wrapping
// fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = strings.ToLower(raw.Storage.Backend)
	}
	switch {
	case raw.Storage.Path != "":
		cfg.Storage.Path = raw.Storage.Path
	case cfg.Storage.Backend == "sqlite":
		cfg.Storage.Path = defaultSQLitePath
	}

	if raw.HTTP.Timeout != "" {
		timeout, err := time.ParseDuration(raw.HTTP.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse http.timeout %q: %w", raw.HTTP.Timeout, err)
		}
		cfg.HTTP.Timeout = timeout
	}
	if raw.HTTP.UserAgent != "" {
		cfg.HTTP.UserAgent = raw.HTTP.UserAgent
	}

	if raw.Providers.HH.BaseURL != "" {
		cfg.Providers.HH.BaseURL = raw.Providers.HH.BaseURL
	}
	sj := raw.Providers.SuperJob
	if sj.BaseURL == "" {
		sj.BaseURL = cfg.Providers.SuperJob.BaseURL
	}
	if sj.APIKey == "" {
		sj.APIKey = cfg.Providers.SuperJob.APIKey
	}
	cfg.Providers.SuperJob = sj

	if raw.Search.TopN != 0 {
		cfg.Search.TopN = raw.Search.TopN
	}
	if raw.Logging.Level != "" {
		cfg.Logging.Level = raw.Logging.Level
	}
	if raw.Logging.Format != "" {
		cfg.Logging.Format = raw.Logging.Format
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("storage.backend must be \"json\" or \"sqlite\", got %q", cfg.Storage.Backend)
	}
	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Search.TopN < 0 {
		return fmt.Errorf("search.top_n must not be negative, got %d", cfg.Search.TopN)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", cfg.Logging.Format)
	}
	if cfg.Providers.SuperJob.PaymentFrom < 0 || cfg.Providers.SuperJob.PaymentTo < 0 {
		return fmt.Errorf("providers.superjob payment bounds must not be negative")
	}
	return nil
}
