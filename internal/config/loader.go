package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a variant.
// Search order: customPath -> ~/.flappy/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// A file overlays the variant defaults, so it only needs the keys it changes.
func Load(customPath, variant string) (FlappyConfig, error) {
	base, err := embeddedDefault(variant)
	if err != nil {
		return base, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := overlay(base, data); err == nil {
				return validated(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", filename)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := overlay(base, data); err == nil {
			return validated(cfg, localPath)
		}
	}

	return validated(base, "embedded default")
}

// embeddedDefault returns the variant's embedded YAML applied on top of the
// hardcoded defaults.
func embeddedDefault(variant string) (FlappyConfig, error) {
	base := Default(variant)
	data := GetDefaultYAML(variant)
	if data == nil {
		return base, fmt.Errorf("config: unknown variant %q", variant)
	}
	cfg, err := overlay(base, data)
	if err != nil {
		return base, nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// overlay decodes data on top of a copy of base.
func overlay(base FlappyConfig, data []byte) (FlappyConfig, error) {
	cfg := base
	cfg.Input.FlapKeys = append([]string(nil), base.Input.FlapKeys...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func validated(cfg FlappyConfig, source string) (FlappyConfig, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
