package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("api: {}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("expected BaseURL %s, got %q", defaultBaseURL, cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != defaultTimeoutSeconds {
		t.Errorf("expected TimeoutSeconds %d when unset, got %d", defaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Helper()
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load with missing file should not error, got %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Errorf("expected BaseURL %s, got %q", defaultBaseURL, cfg.API.BaseURL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "api:\n  base_url: https://file.example.com\n  timeout_seconds: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SENSO_BASE_URL", "https://env.example.com")
	t.Setenv("SENSO_HTTP_TIMEOUT_SECONDS", "45")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("expected env to override file, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 45 {
		t.Errorf("expected TimeoutSeconds 45 from env, got %d", cfg.API.TimeoutSeconds)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Helper()
	cfg := &Config{}
	setDefaults(cfg)

	if err := cfg.Validate(); err == nil {
		t.Error("expected error when API key is missing")
	}

	cfg.API.Key = "tgr_test_key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config with key set, got %v", err)
	}
}
