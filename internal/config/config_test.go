package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
  path: /tmp/jobs.db
http:
  timeout: 5s
  user_agent: my-agent
providers:
  hh:
    base_url: http://localhost:9000/
  superjob:
    api_key: v3.r.key
    order_field: date
    order_direction: desc
    payment_from: 100000
search:
  top_n: 3
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/jobs.db" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.HTTP.Timeout != 5*time.Second || cfg.HTTP.UserAgent != "my-agent" {
		t.Errorf("HTTP = %+v", cfg.HTTP)
	}
	if cfg.Providers.HH.BaseURL != "http://localhost:9000/" {
		t.Errorf("HH.BaseURL = %q", cfg.Providers.HH.BaseURL)
	}
	sj := cfg.Providers.SuperJob
	if sj.APIKey != "v3.r.key" || sj.OrderField != "date" || sj.OrderDirection != "desc" || sj.PaymentFrom != 100000 {
		t.Errorf("SuperJob = %+v", sj)
	}
	if sj.BaseURL != defaultSJBaseURL {
		t.Errorf("SuperJob.BaseURL = %q, want default", sj.BaseURL)
	}
	if cfg.Search.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.Search.TopN)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	t.Setenv(SuperJobTokenEnv, "")
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Storage != want.Storage || cfg.HTTP != want.HTTP || cfg.Search != want.Search || cfg.Logging != want.Logging {
		t.Errorf("Load(empty) = %+v, want %+v", cfg, want)
	}
}

func TestLoad_SQLiteDefaultPath(t *testing.T) {
	cfg, err := Load(writeConfig(t, "storage:\n  backend: sqlite\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Path != defaultSQLitePath {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, defaultSQLitePath)
	}
}

func TestLoad_TokenFromEnvironment(t *testing.T) {
	t.Setenv(SuperJobTokenEnv, "from-env")

	cfg, err := Load(writeConfig(t, "search:\n  top_n: 5\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.SuperJob.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", cfg.Providers.SuperJob.APIKey)
	}

	cfg, err = Load(writeConfig(t, "providers:\n  superjob:\n    api_key: from-file\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.SuperJob.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want from-file", cfg.Providers.SuperJob.APIKey)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("VACANCIES_TEST_PATH", "/data/saved.json")
	cfg, err := Load(writeConfig(t, "storage:\n  path: ${VACANCIES_TEST_PATH}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Path != "/data/saved.json" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "storage: [broken"))
	if err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown backend":  "storage:\n  backend: postgres\n",
		"zero timeout":     "http:\n  timeout: 0s\n",
		"negative timeout": "http:\n  timeout: -1s\n",
		"bad duration":     "http:\n  timeout: soon\n",
		"negative top_n":   "search:\n  top_n: -1\n",
		"bad log format":   "logging:\n  format: xml\n",
		"negative payment": "providers:\n  superjob:\n    payment_to: -5\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Errorf("Load: expected error for %s", name)
			}
		})
	}
}
