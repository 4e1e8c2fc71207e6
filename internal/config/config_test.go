package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_TopKTooLarge(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Engine: EngineConfig{TopK: 5000},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for oversized top_k")
	}
}

func TestValidate_FuzzyCutoffOutOfRange(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Engine: EngineConfig{TopK: 10, FuzzyCutoff: 1.2},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for fuzzy_cutoff above 1")
	}
}

func TestValidate_LoggingLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{
				HTTP:    HTTPConfig{Port: 8080},
				Logging: LoggingConfig{Level: level},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid level %q: %v", level, err)
			}
		})
	}

	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Logging: LoggingConfig{Level: "verbose"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown logging level")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Engine.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Engine.TopK)
	}
	if cfg.Engine.FuzzyCutoff != 0.6 {
		t.Errorf("expected FuzzyCutoff=0.6, got %v", cfg.Engine.FuzzyCutoff)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected empty catalog path, got %q", cfg.Catalog.Path)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 9000, ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Engine: EngineConfig{TopK: 25, FuzzyCutoff: 0.8},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 {
		t.Errorf("expected Port=9000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Engine.TopK != 25 {
		t.Errorf("expected TopK=25, got %d", cfg.Engine.TopK)
	}
	if cfg.Engine.FuzzyCutoff != 0.8 {
		t.Errorf("expected FuzzyCutoff=0.8, got %v", cfg.Engine.FuzzyCutoff)
	}
}

// chdir changes the working directory for the test and restores it afterward.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("nosuchenv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.HTTP.Port)
	}
	if cfg.Engine.TopK != 10 {
		t.Errorf("expected default top_k, got %d", cfg.Engine.TopK)
	}
}

func TestLoad_ReadsFileAndExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	src := `http:
  port: ${DRAMAREC_TEST_PORT:-9090}
engine:
  top_k: 5
catalog:
  path: data/kdramas.csv
`
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(src), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090 from default expansion, got %d", cfg.HTTP.Port)
	}
	if cfg.Engine.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", cfg.Engine.TopK)
	}
	if cfg.Catalog.Path != "data/kdramas.csv" {
		t.Errorf("unexpected catalog path: %q", cfg.Catalog.Path)
	}

	t.Setenv("DRAMAREC_TEST_PORT", "7070")
	cfg, err = Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 7070 {
		t.Errorf("expected port 7070 from environment, got %d", cfg.HTTP.Port)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected local, got %q", env)
	}

	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("expected prod, got %q", env)
	}
}
