package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/amishk599/vacancies/internal/adapter"
	"github.com/amishk599/vacancies/internal/config"
	"github.com/amishk599/vacancies/internal/printer"
	"github.com/amishk599/vacancies/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadConfig_MissingDefaultFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VACANCIES_CONFIG", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("backend = %q, want json", cfg.Storage.Backend)
	}
}

func TestLoadConfig_MissingExplicitFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config")
	}
}

func TestLoadConfig_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("search:\n  top_n: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VACANCIES_CONFIG", path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Search.TopN != 7 {
		t.Errorf("TopN = %d, want 7", cfg.Search.TopN)
	}
}

func TestCreateSource(t *testing.T) {
	cfg := config.Default()
	cfg.Providers.SuperJob.APIKey = ""

	src, err := createSource("hh", cfg, http.DefaultClient, discardLogger())
	if err != nil || src.Name() != "hh" {
		t.Errorf("hh source = %v, %v", src, err)
	}

	if _, err := createSource("sj", cfg, http.DefaultClient, discardLogger()); !errors.Is(err, adapter.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	cfg.Providers.SuperJob.APIKey = "v3.r.key"
	src, err = createSource("sj", cfg, http.DefaultClient, discardLogger())
	if err != nil || src.Name() != "sj" {
		t.Errorf("sj source = %v, %v", src, err)
	}

	if _, err := createSource("linkedin", cfg, http.DefaultClient, discardLogger()); !errors.Is(err, errUnknownProvider) {
		t.Errorf("expected errUnknownProvider, got %v", err)
	}
}

func TestOpenStore(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "saved.json")

	s, closeStore, err := openStore(cfg, false, discardLogger())
	if err != nil {
		t.Fatalf("openStore(json): %v", err)
	}
	closeStore()
	if _, ok := s.(*store.JSONStore); !ok {
		t.Errorf("expected *store.JSONStore, got %T", s)
	}

	s, closeStore, err = openStore(cfg, true, discardLogger())
	if err != nil {
		t.Fatalf("openStore(dry-run): %v", err)
	}
	closeStore()
	if _, ok := s.(*store.NopStore); !ok {
		t.Errorf("expected *store.NopStore, got %T", s)
	}

	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = filepath.Join(t.TempDir(), "saved.db")
	s, closeStore, err = openStore(cfg, false, discardLogger())
	if err != nil {
		t.Fatalf("openStore(sqlite): %v", err)
	}
	defer closeStore()
	if _, ok := s.(*store.SQLiteStore); !ok {
		t.Errorf("expected *store.SQLiteStore, got %T", s)
	}
}

func TestNewPrinter(t *testing.T) {
	cfg := config.Default()
	if _, ok := newPrinter(cfg, io.Discard, discardLogger()).(*printer.ConsolePrinter); !ok {
		t.Error("expected console printer for text logs")
	}
	cfg.Logging.Format = "json"
	if _, ok := newPrinter(cfg, io.Discard, discardLogger()).(*printer.LogPrinter); !ok {
		t.Error("expected log printer for json logs")
	}
}
