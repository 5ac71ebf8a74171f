package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\nopenai:\n  apiKey: \"sk-test\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Openai.ApiKey != "sk-test" {
		t.Errorf("Expected yaml api key, got %q", cfg.Openai.ApiKey)
	}
	if cfg.Catalog.Path != "./data/courses.json" {
		t.Errorf("Expected default catalog path, got %q", cfg.Catalog.Path)
	}
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-from-env")
	path := writeConfig(t, "server:\n  port: 0\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Gemini.ApiKey != "gm-from-env" {
		t.Errorf("Expected env fallback, got %q", cfg.Gemini.ApiKey)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
