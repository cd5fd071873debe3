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
//  2. file (YAML) if PONTOON_CONFIG is set
//  3. env (prefix PONTOON_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PONTOON_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
		}
	}

	// Environment variables: PONTOON_ADDR, PONTOON_LOG_LEVEL, ...
	// Map env keys like PONTOON_REPLAY_CACHE_SIZE -> replay_cache_size.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PONTOON_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pontoon_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadEnv, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrValidate)
	}
	if cfg.ReplayCacheSize <= 0 {
		return nil, fmt.Errorf("%w: replay_cache_size must be positive", ErrValidate)
	}
	return &cfg, nil
}
