// Package pkg provides the core libraries of synteny, a layout engine for
// whole-genome alignments.
//
// # Overview
//
// Synteny turns chromosomes, annotated features and pairwise alignment
// links into drawing coordinates. Two layouts are supported: a linear one
// that stacks genomes as rows and joins their chromosomes with ribbons,
// and a circular one that places every chromosome on a ring and joins
// them with chords. The pkg directory is organized into these areas:
//
//  1. [genome], [filter], [config] - the input model: alignment data,
//     display filters and graphical configuration
//  2. [layout], [color], [tree] - the engines: coordinates, color scales
//     and the phylogenetic tree panel
//  3. [sink], [render] - SVG, PNG, PDF and JSON output
//  4. [pipeline], [cache], [observability], [io] - orchestration
//     (load → layout → render), layout caching, hooks and file formats
//
// # Architecture
//
// The typical data flow through synteny:
//
//	data.json + filters.json + config.toml
//	         ↓
//	    [io] and [config] packages (decode and validate)
//	         ↓
//	    [filter] package (visible chromosomes and links)
//	         ↓
//	    [layout] package (linear or circular coordinates)
//	         ↓
//	    [sink] package → SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/synteny/pkg/config"
//	    "github.com/matzehuels/synteny/pkg/io"
//	    "github.com/matzehuels/synteny/pkg/layout"
//	    "github.com/matzehuels/synteny/pkg/sink"
//	)
//
//	data, _ := io.ImportData("data.json")
//	cfg := config.Default()
//	s := layout.Snapshot{Data: data, Filters: io.DefaultFilters(data, cfg), Config: cfg}
//
//	lin, _ := layout.ComputeLinear(s)
//	svg, _ := sink.RenderSVG(layout.Result{Layout: config.LayoutLinear, Linear: &lin}, s)
//
// Or run the whole pipeline with caching through [pipeline.Runner].
package pkg
