package config

import (
	"maps"
	"slices"

	"github.com/matzehuels/synteny/pkg/errors"
)

type param struct {
	field func(*Config) *float64
	unit  bool // value must lie in [0, 1] instead of being > 0
}

var params = map[string]param{
	"width":               {field: func(c *Config) *float64 { return &c.Graphical.Width }},
	"height":              {field: func(c *Config) *float64 { return &c.Graphical.Height }},
	"karyoHeight":         {field: func(c *Config) *float64 { return &c.Graphical.KaryoHeight }},
	"karyoDistance":       {field: func(c *Config) *float64 { return &c.Graphical.KaryoDistance }},
	"linkKaryoDistance":   {field: func(c *Config) *float64 { return &c.Graphical.LinkKaryoDistance }},
	"tickDistance":        {field: func(c *Config) *float64 { return &c.Graphical.TickDistance }},
	"treeWidth":           {field: func(c *Config) *float64 { return &c.Graphical.TreeWidth }},
	"genomeLabelWidth":    {field: func(c *Config) *float64 { return &c.Graphical.GenomeLabelWidth }},
	"tickSize":            {field: func(c *Config) *float64 { return &c.Circular.TickSize }},
	"genomeLabelSize":     {field: func(c *Config) *float64 { return &c.Labels.Genome.Size }},
	"chromosomeLabelSize": {field: func(c *Config) *float64 { return &c.Labels.Chromosome.Size }},
	"featureLabelSize":    {field: func(c *Config) *float64 { return &c.Labels.Features.Size }},
	"linkOpacity":         {field: func(c *Config) *float64 { return &c.Graphical.LinkOpacity }, unit: true},
}

// Keys returns the names accepted by [Set] and [Get] in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(params))
}

// Get returns the current value of a numeric parameter.
func Get(cfg Config, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, unknownKey(key)
	}
	return *p.field(&cfg), nil
}

// Set parses raw and assigns it to the numeric parameter key. On any error
// cfg is left untouched.
func Set(cfg *Config, key, raw string) error {
	p, ok := params[key]
	if !ok {
		return unknownKey(key)
	}

	var (
		v   float64
		err error
	)
	if p.unit {
		v, err = errors.ParseUnit(key, raw)
	} else {
		v, err = errors.ParsePositive(key, raw)
	}
	if err != nil {
		return err
	}

	*p.field(cfg) = v
	return nil
}

// SetLinkColors replaces the three link-identity colors. All colors are
// validated before any is written.
func SetLinkColors(cfg *Config, minColor, midColor, maxColor string) error {
	for _, s := range []string{minColor, midColor, maxColor} {
		if err := checkColor(s); err != nil {
			return err
		}
	}
	cfg.MinLinkIdentityColor = minColor
	cfg.MidLinkIdentityColor = midColor
	cfg.MaxLinkIdentityColor = maxColor
	return nil
}

// SetGenomeColors replaces the start and end colors of the genome scale.
func SetGenomeColors(cfg *Config, startColor, endColor string) error {
	for _, s := range []string{startColor, endColor} {
		if err := checkColor(s); err != nil {
			return err
		}
	}
	cfg.Linear.StartLineColor = startColor
	cfg.Linear.EndLineColor = endColor
	return nil
}

func unknownKey(key string) error {
	return errors.New(errors.ErrCodeInvalidInput, "unknown parameter %q", key)
}
