package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
)

// Config is the top-level YAML configuration.
type Config struct {
	Pipeline Pipeline `yaml:"pipeline"`
	Store    Store    `yaml:"store"`
	Log      Log      `yaml:"log"`
}

// Pipeline configures the analysis chain.
type Pipeline struct {
	Filters        []string `yaml:"filters"`
	MaxTokenLength int      `yaml:"max_token_length"`
	StopwordsFile  string   `yaml:"stopwords_file"`
}

// Store configures the SQLite sink.
type Store struct {
	Path string `yaml:"path"`
}

// Log configures the process logger.
type Log struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: Pipeline{
			Filters:        append([]string(nil), analysis.DefaultFilters...),
			MaxTokenLength: analysis.DefaultMaxTokenLength,
		},
		Store: Store{Path: "hebnorm.db"},
		Log:   Log{Level: "info", Service: "hebnorm"},
	}
}

// Load reads a YAML config file. Omitted fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and the filter chain. Filter names are
// resolved later against a registry.
func (c *Config) Validate() error {
	if c.Pipeline.MaxTokenLength < 0 {
		return fmt.Errorf("pipeline.max_token_length %d is negative: %w", c.Pipeline.MaxTokenLength, internalerr.ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Pipeline.Filters))
	for _, name := range c.Pipeline.Filters {
		if name == "" {
			return fmt.Errorf("pipeline.filters: empty name: %w", internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("pipeline.filters: %q listed twice: %w", name, internalerr.ErrInvalidConfig)
		}
		seen[name] = struct{}{}
	}
	if _, usesStop := seen[analysis.FilterStop]; usesStop && c.Pipeline.StopwordsFile == "" {
		return fmt.Errorf("pipeline.filters uses %q without pipeline.stopwords_file: %w", analysis.FilterStop, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("decode stoplist %s: %w", path, err)
	}

	return &sl, nil
}
