package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is searched relative to the working directory.
const localConfigPath = "configs/crawler.yaml"

// Load loads and validates the crawler configuration.
// Search order: customPath -> ~/.crawler/configs/crawler.yaml -> ./configs/crawler.yaml -> embedded default
// Files are decoded on top of the built-in defaults, so partial files only override what they set.
func Load(customPath string) (CrawlerConfig, Source, error) {
	cfg, src, err := load(customPath)
	if err != nil {
		return cfg, src, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

func load(customPath string) (CrawlerConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrawlerConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrawlerConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crawler.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCrawlerYAML)
	if err != nil {
		return DefaultCrawlerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of DefaultCrawlerConfig.
// A key table in the file replaces the default table as a whole.
func Parse(data []byte) (CrawlerConfig, error) {
	cfg := DefaultCrawlerConfig()

	var probe struct {
		Movement struct {
			Keys map[string][]string `yaml:"keys"`
		} `yaml:"movement"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return cfg, err
	}
	if len(probe.Movement.Keys) > 0 {
		cfg.Movement.Keys = nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg CrawlerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crawler", "configs", filename)
}
