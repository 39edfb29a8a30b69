package sink

import (
	"encoding/json"

	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID  string
	stages []string
}

// WithRunID records the pipeline run that produced the layout.
func WithRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithStages records the filter stages that ran, in order.
func WithStages(stages []string) JSONOption {
	return func(r *jsonRenderer) { r.stages = stages }
}

type jsonOutput struct {
	RunID    string           `json:"run_id,omitempty"`
	Layout   string           `json:"layout"`
	Stages   []string         `json:"stages,omitempty"`
	Linear   *layout.Linear   `json:"linear,omitempty"`
	Circular *layout.Circular `json:"circular,omitempty"`
}

// RenderJSON exports the coordinates of res as a pretty-printed JSON
// document. Field names follow the coordinate types of package layout, e.g.
// karyos carry karyo, x, y, width, height and genome.
func RenderJSON(res layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if res.Linear == nil && res.Circular == nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "nothing to export for layout %q", res.Layout)
	}

	out := jsonOutput{
		RunID:    r.runID,
		Layout:   res.Layout,
		Stages:   r.stages,
		Linear:   res.Linear,
		Circular: res.Circular,
	}
	return json.MarshalIndent(out, "", "  ")
}
