package pipeline

import (
	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Compute runs the layout engine selected by the snapshot configuration.
func Compute(s layout.Snapshot) (layout.Result, error) {
	switch s.Config.Layout {
	case config.LayoutLinear:
		l, err := layout.ComputeLinear(s)
		if err != nil {
			return layout.Result{}, err
		}
		return layout.Result{Layout: config.LayoutLinear, Linear: &l}, nil
	case config.LayoutCircular:
		c, err := layout.ComputeCircular(s)
		if err != nil {
			return layout.Result{}, err
		}
		return layout.Result{Layout: config.LayoutCircular, Circular: &c}, nil
	}
	return layout.Result{}, errors.New(errors.ErrCodeInvalidLayout, "invalid layout: %q (must be one of: linear, circular)", s.Config.Layout)
}

// Counts returns how many karyos and links a result draws.
func Counts(res layout.Result) (karyos, links int) {
	switch {
	case res.Linear != nil:
		return len(res.Linear.Karyos), len(res.Linear.Links)
	case res.Circular != nil:
		return len(res.Circular.Karyos), len(res.Circular.Links)
	}
	return 0, 0
}
