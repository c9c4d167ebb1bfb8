package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLinker loads the linker configuration.
// Search order: customPath -> ~/.linker/configs/linker.yaml -> ./configs/linker.yaml -> embedded default
//
// Values missing from a file keep their defaults. A custom path that cannot be
// read or parsed, or any config that fails validation, is an error.
func LoadLinker(customPath string) (LinkerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LinkerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return LinkerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("linker.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/linker.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultLinkerYAML)
	if err != nil {
		return DefaultLinkerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parse overlays YAML onto the hard-coded defaults.
func parse(data []byte) (LinkerConfig, error) {
	cfg := DefaultLinkerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LinkerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linker", "configs", filename)
}
