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
	"github.com/okian/biasindex/internal/domain/ranking"
)

// Environment variable names.
const (
	envPrefix     = "BIAS_"
	envConfigFile = "BIAS_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BIAS_CONFIG is set
//  3. env (prefix BIAS_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// BIAS_INPUT_PATH -> input_path. Underscores are kept to match the koanf
	// tags; BIAS_CONFIG itself is not a Config field and is dropped.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		if s == envConfigFile {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.InputPath == "":
		return fmt.Errorf("%w: input_path must not be empty", ErrInvalidConfig)
	case c.OutputPath == "":
		return fmt.Errorf("%w: output_path must not be empty", ErrInvalidConfig)
	case c.SeasonColumn == "" || c.WeekColumn == "" || c.JudgeColumn == "" || c.FanColumn == "":
		return fmt.Errorf("%w: column names must not be empty", ErrInvalidConfig)
	case c.ChartWidthIn <= 0 || c.ChartHeightIn <= 0:
		return fmt.Errorf("%w: chart size must be positive", ErrInvalidConfig)
	case c.ChartDPI <= 0:
		return fmt.Errorf("%w: chart_dpi must be positive", ErrInvalidConfig)
	}
	if _, err := ranking.ParseTieMethod(c.TieMethod); err != nil {
		return fmt.Errorf("%w: tie_method: %w", ErrInvalidConfig, err)
	}
	return nil
}
