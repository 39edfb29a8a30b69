package pipeline

import (
	"fmt"

	"github.com/matzehuels/synteny/pkg/config"
	synio "github.com/matzehuels/synteny/pkg/io"
	"github.com/matzehuels/synteny/pkg/layout"
)

// Load reads the data, configuration and filters named by opts into a
// snapshot. A missing configuration path means defaults; a missing filters
// path means [synio.DefaultFilters].
func Load(opts Options) (layout.Snapshot, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return layout.Snapshot{}, err
	}

	data, err := synio.ImportData(opts.DataPath)
	if err != nil {
		return layout.Snapshot{}, fmt.Errorf("data: %w", err)
	}

	cfg, err := LoadConfig(opts)
	if err != nil {
		return layout.Snapshot{}, err
	}

	filters := synio.DefaultFilters(data, cfg)
	if opts.FiltersPath != "" {
		if filters, err = synio.ImportFilters(opts.FiltersPath); err != nil {
			return layout.Snapshot{}, fmt.Errorf("filters: %w", err)
		}
	}
	return layout.Snapshot{Data: data, Filters: filters, Config: cfg}, nil
}

// LoadConfig builds the configuration of a run: defaults or the file at
// ConfigPath, then every override in Sets, then the Layout override.
func LoadConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
	}
	for _, s := range opts.Sets {
		key, value, err := ParseSet(s)
		if err != nil {
			return config.Config{}, err
		}
		if err := config.Set(&cfg, key, value); err != nil {
			return config.Config{}, fmt.Errorf("set %s: %w", key, err)
		}
	}
	if opts.Layout != "" {
		cfg.Layout = opts.Layout
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
