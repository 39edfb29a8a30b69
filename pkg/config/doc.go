// Package config holds the graphical configuration of a synteny drawing.
//
// # Overview
//
// [Config] groups every tunable the layout engines read: canvas size,
// chromosome height and spacing, tick spacing, link-identity thresholds and
// their colors, tree and label toggles, and the supported feature kinds.
// [Default] returns the stock values; nothing in this module keeps a global
// configuration, so a [Config] value is passed explicitly into every
// computation.
//
// # Loading
//
// [Load] reads a TOML or YAML file (chosen by extension) on top of
// [Default], so a file only needs to mention the values it changes:
//
//	# synteny.toml
//	layout = "circular"
//
//	[graphicalParameters]
//	width = 1200
//	tickDistance = 250
//
// # Scalar setters
//
// [Set] assigns one numeric parameter from raw user input. It rejects empty
// input, non-numeric input and values that are too small (or outside [0, 1]
// for opacities) with distinct error codes, and never modifies the
// configuration when it fails:
//
//	if err := config.Set(&cfg, "karyoDistance", "abc"); err != nil {
//	    // errors.Is(err, errors.ErrCodeNotANumber) == true
//	}
package config
