// Package tree draws the optional phylogenetic tree next to the genome rows
// of a linear layout.
//
// # Overview
//
// The tree is carried by [genome.Data] as nested [genome.TreeNode] values.
// Leaves stand for genomes; inner nodes usually have no name. This package
// does not lay the tree out itself. It converts the tree to Graphviz DOT
// with [ToDOT] and lets Graphviz place the nodes:
//
//	p, err := tree.ParamsFor(cfg, genomeDistance)
//	dot := tree.ToDOT(data.Tree, p)
//	svg, err := tree.RenderSVG(dot)
//
// # Geometry
//
// [ParamsFor] derives the panel size from the linear configuration. The
// panel is one genome distance taller than the rows and starts half a
// distance above the first row, so leaves line up with row centres. A
// "left" tree grows from the root on the left (rankdir LR); a "right" tree
// is mirrored (rankdir RL).
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz] in process.
package tree
