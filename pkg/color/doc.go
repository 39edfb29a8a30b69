// Package color provides the piecewise-linear color scales used for links
// and genomes.
//
// A [Scale] maps a number to a color by locating the domain segment that
// contains it and blending the two neighbouring range colors in RGB space.
// Values outside the outer domain bounds clamp to the first or last color.
//
// Two scales are built from a [config.Config]:
//
//   - [Identity] colors a link by its identity score over the domain
//     [0, min, mid, max, 100]. The scale is flat below min and above max.
//   - [Genome] colors a chromosome by the row index of its genome.
//
// Colors are parsed and blended with go-colorful.
//
// [config.Config]: github.com/matzehuels/synteny/pkg/config.Config
package color
