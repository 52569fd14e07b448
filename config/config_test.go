package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luca-patrignani/showdown/domain/poker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showdown.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "rules: standard\noutput: plain\nreference: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules != "standard" || cfg.Output != "plain" || !cfg.Reference {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
	rules, err := cfg.RuleSet()
	if err != nil {
		t.Fatal(err)
	}
	if rules != poker.Standard {
		t.Errorf("expected standard rules, got %s", rules)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "rules: standard\nlog_level: warn\n")
	t.Setenv("SHOWDOWN_RULES", "faithful")
	t.Setenv("SHOWDOWN_REFERENCE", "true")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules != "faithful" {
		t.Errorf("expected env to override rules, got %q", cfg.Rules)
	}
	if !cfg.Reference {
		t.Error("expected reference from env")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level from file, got %q", cfg.LogLevel)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "rules: [standard\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("SHOWDOWN_REFERENCE", "maybe")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non boolean SHOWDOWN_REFERENCE")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	bad := []Config{
		{Rules: "texas", Output: "panel", LogLevel: "info"},
		{Rules: "faithful", Output: "html", LogLevel: "info"},
		{Rules: "faithful", Output: "plain", LogLevel: "loud"},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}
