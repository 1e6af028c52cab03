package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HIREBOARD_CONFIG is set
//  3. env (prefix HIREBOARD_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("HIREBOARD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HIREBOARD_LOG_LEVEL, HIREBOARD_PAGE_SIZE, ...
	// Map env keys like HIREBOARD_PAGE_SIZE -> page_size (flat keys).
	// Underscores are preserved to match koanf tags on the struct.
	envProvider := env.Provider("HIREBOARD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hireboard_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AutosaveDebounceMS <= 0 {
		return fmt.Errorf("%w: autosave_debounce_ms must be positive", ErrInvalidConfig)
	}
	if c.MaxSelection < 2 {
		return fmt.Errorf("%w: max_selection must be at least 2", ErrInvalidConfig)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalidConfig)
	}
	if c.FetchDelayMS < 0 {
		return fmt.Errorf("%w: fetch_delay_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}
