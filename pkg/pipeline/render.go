package pipeline

import (
	"fmt"

	"github.com/matzehuels/synteny/pkg/layout"
	"github.com/matzehuels/synteny/pkg/sink"
	"github.com/matzehuels/synteny/pkg/tree"
)

// Render generates output artifacts in the requested formats. runID is
// recorded in JSON output when set.
func Render(res layout.Result, s layout.Snapshot, runID string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts, err := svgOptions(res, s, opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(res, s, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(res, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(res, s, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(res, sink.WithRunID(runID), sink.WithStages(s.Filters.Stages()))
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func svgOptions(res layout.Result, s layout.Snapshot, opts Options) ([]sink.SVGOption, error) {
	var svgOpts []sink.SVGOption
	if opts.Hover {
		svgOpts = append(svgOpts, sink.WithHover())
	}
	if opts.NoTicks {
		svgOpts = append(svgOpts, sink.WithoutTicks())
	}

	if res.Linear != nil && res.Linear.Frame.Tree && needsSVG(opts.Formats) {
		panel, p, err := RenderTree(s, res.Linear.GenomeDistance)
		if err != nil {
			return nil, fmt.Errorf("tree: %w", err)
		}
		svgOpts = append(svgOpts, sink.WithTree(tree.Fit(panel, p), p))
	}
	return svgOpts, nil
}

// RenderTree draws the tree of s as a standalone SVG sized for a linear
// layout whose rows are genomeDistance apart.
func RenderTree(s layout.Snapshot, genomeDistance float64) ([]byte, tree.Params, error) {
	p, err := tree.ParamsFor(s.Config, genomeDistance)
	if err != nil {
		return nil, tree.Params{}, err
	}
	svg, err := tree.RenderSVG(tree.ToDOT(s.Data.Tree, p))
	if err != nil {
		return nil, tree.Params{}, err
	}
	return svg, p, nil
}

func needsSVG(formats []string) bool {
	for _, f := range formats {
		if f != FormatJSON {
			return true
		}
	}
	return false
}
