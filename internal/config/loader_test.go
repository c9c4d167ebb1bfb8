package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultLinkerConfig() {
		t.Errorf("Embedded defaults = %+v, expected %+v", cfg, DefaultLinkerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoadLinkerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linker.yaml")
	data := []byte("character:\n  speed: 8\nbroken_pot:\n  life: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadLinker(path)
	if err != nil {
		t.Fatalf("LoadLinker() failed: %v", err)
	}

	if cfg.Character.Speed != 8 {
		t.Errorf("Character.Speed = %d, expected 8", cfg.Character.Speed)
	}
	if cfg.BrokenPot.Life != 12 {
		t.Errorf("BrokenPot.Life = %d, expected 12", cfg.BrokenPot.Life)
	}
	// Untouched values keep their defaults
	if cfg.Character.Width != 50 || cfg.Screen.Width != 800 {
		t.Errorf("Defaults not preserved: %+v", cfg)
	}
}

func TestLoadLinkerMissingCustomPath(t *testing.T) {
	_, err := LoadLinker(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadLinker() with missing file should fail")
	}
}

func TestLoadLinkerMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("character: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadLinker(path); err == nil {
		t.Fatal("LoadLinker() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LinkerConfig)
	}{
		{"zero speed", func(c *LinkerConfig) { c.Character.Speed = 0 }},
		{"negative life", func(c *LinkerConfig) { c.BrokenPot.Life = -1 }},
		{"zero tick rate", func(c *LinkerConfig) { c.TickRate = 0 }},
		{"character wider than screen", func(c *LinkerConfig) { c.Character.Width = 900 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLinkerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
