package config

import (
	"fmt"
	"path/filepath"

	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
)

// Loader loads configuration and constructs the analysis components.
type Loader struct {
	// ConfigPath is optional; without it Default() is used.
	ConfigPath string
}

// Components holds everything built from a configuration.
type Components struct {
	Config   *Config
	Registry *analysis.Registry
	Pipeline *analysis.Pipeline
}

// Load reads the configuration and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		var err error
		if cfg, err = Load(l.ConfigPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return Build(cfg, filepath.Dir(l.ConfigPath))
}

// Build constructs components from cfg. Relative stopword paths are resolved
// against baseDir.
func Build(cfg *Config, baseDir string) (*Components, error) {
	reg := analysis.NewRegistry()

	if path := cfg.Pipeline.StopwordsFile; path != "" {
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		sl, err := LoadStoplist(path)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		if err := reg.RegisterStopwords(analysis.NewStopSet(sl.Terms...)); err != nil {
			return nil, err
		}
	}

	pipeline, err := analysis.NewPipeline(
		analysis.NewTokenizer(cfg.Pipeline.MaxTokenLength),
		reg,
		cfg.Pipeline.Filters...,
	)
	if err != nil {
		return nil, err
	}

	return &Components{
		Config:   cfg,
		Registry: reg,
		Pipeline: pipeline,
	}, nil
}
