package benchcharts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds file-based settings for the benchcharts commands.
type Config struct {
	// TemplatesDir overrides the embedded templates with files from disk.
	TemplatesDir string `yaml:"templates_dir"`
	// Strict enables series schema validation before rendering.
	Strict bool `yaml:"strict"`
	// Concurrency bounds parallel batch work. 0 means one worker per CPU.
	Concurrency int `yaml:"concurrency"`
	// Workbook writes an .xlsx workbook next to each batch chart pair.
	Workbook bool `yaml:"workbook"`
	// Labels overrides the performance-profile metric labels.
	Labels Labels `yaml:"labels"`
}

// Labels holds the metric labels used by the ppo and ppt commands.
type Labels struct {
	Objective string `yaml:"objective"`
	Time      string `yaml:"time"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Labels: Labels{
			Objective: LabelObjective,
			Time:      LabelTime,
		},
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if err != nil {
			return fmt.Errorf("templates_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("templates_dir: %s is not a directory", c.TemplatesDir)
		}
	}
	return nil
}

// Options converts the configuration into render options.
func (c Config) Options() Options {
	opts := DefaultOptions().WithTemplateDir(c.TemplatesDir)
	opts.Strict = c.Strict
	opts.Concurrency = c.Concurrency
	opts.Workbook = c.Workbook
	return opts
}
