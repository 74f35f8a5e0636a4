package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Evaluator.MaxLength != 72 {
		t.Errorf("max_length %d, want 72", cfg.Evaluator.MaxLength)
	}
	if cfg.Evaluator.Lang != "en" {
		t.Errorf("lang %q, want en", cfg.Evaluator.Lang)
	}
	if !cfg.CLI.ShowCrackTimes {
		t.Error("show_crack_times should default on")
	}
}

func TestGetActiveConfigPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "config.toml")
	if got := GetActiveConfigPath(abs); got != abs {
		t.Errorf("absolute path rewritten: %q", got)
	}
	if got := GetActiveConfigPath("config.toml"); !filepath.IsAbs(got) {
		t.Errorf("relative path not resolved: %q", got)
	}
	// Empty input falls back to the default path, never an empty string.
	if got := GetActiveConfigPath(""); got == "" {
		t.Error("empty input should resolve to a fallback")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Evaluator.MaxLength = 128
	cfg.Evaluator.Lang = "zh_CN"
	cfg.CLI.ShowSequence = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Evaluator.MaxLength != 128 || loaded.Evaluator.Lang != "zh_CN" {
		t.Errorf("evaluator section: %+v", loaded.Evaluator)
	}
	if !loaded.CLI.ShowSequence {
		t.Error("show_sequence lost in roundtrip")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// Only one section present; the rest keeps defaults.
	if err := os.WriteFile(path, []byte("[evaluator]\nmax_length = 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Evaluator.MaxLength != 40 {
		t.Errorf("max_length %d, want 40", cfg.Evaluator.MaxLength)
	}
	if cfg.Evaluator.Lang != "en" {
		t.Errorf("lang should keep default: %q", cfg.Evaluator.Lang)
	}
	if cfg.Dict.MaxWords != 50000 {
		t.Errorf("dict defaults lost: %+v", cfg.Dict)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Evaluator.MaxLength != 72 {
		t.Errorf("fresh config: %+v", cfg.Evaluator)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[evaluator]\nlang = \"zh_CN\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, activePath, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatal(err)
	}
	if activePath != path {
		t.Errorf("active path %q, want %q", activePath, path)
	}
	if cfg.Evaluator.Lang != "zh_CN" {
		t.Errorf("lang %q", cfg.Evaluator.Lang)
	}
}
