// Package render converts finished SVG drawings to raster and print
// formats.
//
// [ToPNG] and [ToPDF] pipe the SVG through the external rsvg-convert tool
// from librsvg. Both the synteny drawings of [sink] and the tree panels of
// [tree] pass through here:
//
//	svg := sink.RenderSVG(result)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/synteny/pkg/sink
// [tree]: github.com/matzehuels/synteny/pkg/tree
package render
