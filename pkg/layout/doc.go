// Package layout computes the coordinates of a synteny drawing.
//
// # Overview
//
// Given a [Snapshot] of data, filters and configuration, the engines produce
// plain coordinate arrays that a renderer draws without further geometry:
//
//   - Linear: one horizontal row per genome. Chromosomes are packed left to
//     right in filter order, every row normalised by the widest row so all
//     rows share one base-pair scale. Links become quadrilaterals from the
//     lower edge of the upper row to the upper edge of the lower row.
//   - Circular: one ring shared by all genomes. Each chromosome gets an arc
//     proportional to its length, separated by spacer gaps. Links become
//     pairs of angle spans.
//
// [ComputeLinear] and [ComputeCircular] are the entry points. The individual
// steps ([LinearKaryoCoords], [LinearLinkCoords], [LinearTickCoords],
// [LinearFeatureCoords], [CircularKaryoCoords], ...) are exported for callers
// that only need part of a drawing.
//
// # Reversed chromosomes
//
// A reversed chromosome keeps its length. In the linear layout its x moves
// to the far edge and its width becomes negative; every derived position
// (links, ticks, features) is projected through the signed width, so they
// mirror automatically. Renderers must draw a negative width from x+width
// to x. In the circular layout the start and end angle swap.
//
// # Filtering scope
//
// The linear engine works on the filtered chromosomes and links. The
// circular engine sizes its ring over all chromosomes of the data, walks the
// full draw order and projects every data link, matching the long-standing
// behaviour of the viewer this engine reproduces.
//
// # Determinism
//
// All arrays are produced in a stable order: karyos in draw order, links and
// features by ascending id.
package layout
