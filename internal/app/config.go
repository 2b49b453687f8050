package app

import (
	"fmt"
	"os"
	"time"

	"github.com/corey/lookout/internal/domain/watch"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of .lookout.yml. Durations are strings
// in Go syntax ("2s", "750ms"); booleans are pointers so an absent key is
// distinguishable from an explicit false.
type fileConfig struct {
	IncludeFileTypes []string `yaml:"include_file_types"`
	ExcludeFileTypes []string `yaml:"exclude_file_types"`
	ExcludeDirs      []string `yaml:"exclude_dirs"`
	Recursive        *bool    `yaml:"recursive"`
	Delay            string   `yaml:"delay"`
	Interval         string   `yaml:"interval"`
}

// LoadConfig reads .lookout.yml under root, merged over the defaults.
// A missing file yields the defaults; a malformed file or a bad duration
// is a configuration error, fatal before watching starts.
func LoadConfig(root string) (watch.Config, error) {
	cfg := watch.DefaultConfig()

	data, err := os.ReadFile(NewPaths(root).ConfigFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.IncludeTypes = fc.IncludeFileTypes
	cfg.ExcludeTypes = fc.ExcludeFileTypes
	cfg.ExcludeDirs = fc.ExcludeDirs
	if fc.Recursive != nil {
		cfg.Recursive = *fc.Recursive
	}
	if fc.Delay != "" {
		d, err := time.ParseDuration(fc.Delay)
		if err != nil {
			return cfg, fmt.Errorf("parse delay: %w", err)
		}
		cfg.Delay = d
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return cfg, fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}

	return cfg, cfg.Validate()
}
