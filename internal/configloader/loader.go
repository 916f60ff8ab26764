// Package configloader discovers, loads, and layers editor options from
// config files and the environment. Precedence, lowest to highest:
// built-in defaults, the nearest project config file, environment
// variables.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/textkit/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to start project config discovery from.
	WorkingDir string

	// ExplicitPath is a config file path provided via --config. When set,
	// discovery is skipped; a missing explicit file is an error.
	ExplicitPath string
}

// Result is the outcome of loading configuration.
type Result struct {
	// Options is the fully layered configuration.
	Options *config.Options

	// LoadedFrom is the config file the options came from, empty when
	// only defaults and environment applied.
	LoadedFrom string
}

// Load builds the effective options for one invocation.
func Load(ctx context.Context, loadOpts LoadOptions) (*Result, error) {
	path := loadOpts.ExplicitPath
	if path == "" {
		discovered, err := FindProjectConfig(ctx, loadOpts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover config: %w", err)
		}
		path = discovered
	}

	opts := config.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		opts, err = config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := LoadFromEnv(opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Result{Options: opts, LoadedFrom: path}, nil
}
