// Package config loads paramfix settings from defaults, an optional YAML
// file, PARAMFIX_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings of one run.
type Config struct {
	Root     string   `mapstructure:"root"`
	Filename string   `mapstructure:"filename"`
	Exclude  []string `mapstructure:"exclude"`
	Indent   string   `mapstructure:"indent"`
	Parallel int      `mapstructure:"parallel"`
	Verify   bool     `mapstructure:"verify"`
	Report   string   `mapstructure:"report"`
}

// Default returns the built-in settings: rewrite every route.ts below
// app/api, sequentially, without verification or report.
func Default() *Config {
	return &Config{
		Root:     "app/api",
		Filename: "route.ts",
		Exclude:  []string{},
		Indent:   "  ",
		Parallel: 1,
	}
}

// Validate checks cfg for values the workflow cannot run with.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Filename) == "" {
		return fmt.Errorf("%w: filename must not be empty", ErrInvalidConfig)
	}

	if strings.ContainsAny(cfg.Filename, `/\`) {
		return fmt.Errorf("%w: filename %q must not contain a path separator", ErrInvalidConfig, cfg.Filename)
	}

	if cfg.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1, got %d", ErrInvalidConfig, cfg.Parallel)
	}

	if strings.Trim(cfg.Indent, " \t") != "" {
		return fmt.Errorf("%w: indent %q must contain only spaces and tabs", ErrInvalidConfig, cfg.Indent)
	}

	for _, pattern := range cfg.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalidConfig, pattern, err)
		}
	}

	return nil
}
