package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/vacancies/internal/adapter"
	"github.com/amishk599/vacancies/internal/config"
	"github.com/amishk599/vacancies/internal/logging"
	"github.com/amishk599/vacancies/internal/model"
	"github.com/amishk599/vacancies/internal/store"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "vacancies",
	Short: "Search hh.ru and superjob.ru and keep the best postings",
	Long:  "vacancies queries job boards, filters and ranks the postings by salary, and saves the top ones to a local file.",
	// Default to `search` so that `vacancies` with no args runs the interactive flow.
	RunE:         runSearch,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: VACANCIES_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addSearchFlags(rootCmd)
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > VACANCIES_CONFIG env var > "./config.yaml".
// A missing default file is not an error: built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	explicit := true
	if path == "" {
		if env := os.Getenv("VACANCIES_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultConfigPath
			explicit = false
		}
	}
	cfg, err := config.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func setupLogger(cfg *config.Config, dbg bool) *slog.Logger {
	level := cfg.Logging.Level
	if dbg {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(logger)
	return logger
}

// setup loads config and builds the logger shared by every command.
func setup() (*config.Config, *slog.Logger) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logging.New(os.Stderr, "info", "text").Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := setupLogger(cfg, debug)
	logger.Debug("config loaded",
		"storage", cfg.Storage.Backend,
		"path", cfg.Storage.Path,
		"timeout", cfg.HTTP.Timeout.String(),
	)
	return cfg, logger
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTP.Timeout}
}

// openStore returns the configured store and a close func. dryRun selects a
// NopStore so nothing is persisted.
func openStore(cfg *config.Config, dryRun bool, logger *slog.Logger) (model.VacancyStore, func(), error) {
	if dryRun {
		logger.Info("dry-run mode enabled, no vacancies will be saved")
		return store.NewNopStore(), func() {}, nil
	}

	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Storage.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := store.NewJSONStore(cfg.Storage.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

// providers lists the supported job boards in picker order.
var providers = []struct {
	key   string
	label string
}{
	{"hh", "hh.ru"},
	{"sj", "superjob.ru"},
}

var errUnknownProvider = errors.New("unknown provider")

// createSource builds the VacancySource for provider key.
func createSource(key string, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (model.VacancySource, error) {
	switch key {
	case "hh":
		return adapter.NewHeadHunterAdapter(cfg.Providers.HH.BaseURL, cfg.HTTP.UserAgent, httpClient, logger), nil
	case "sj":
		sj := cfg.Providers.SuperJob
		return adapter.NewSuperJobAdapter(sj.APIKey, adapter.SuperJobOptions{
			BaseURL:        sj.BaseURL,
			OrderField:     sj.OrderField,
			OrderDirection: sj.OrderDirection,
			PaymentFrom:    sj.PaymentFrom,
			PaymentTo:      sj.PaymentTo,
		}, httpClient, logger)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownProvider, key)
	}
}
