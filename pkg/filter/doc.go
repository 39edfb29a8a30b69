// Package filter derives the visible chromosomes and links of a drawing.
//
// # Overview
//
// [Filters] is the user-editable display state: per-chromosome visibility
// and reverse flags, the circular draw order, the linear genome row order,
// link identity and length bounds, and four global switches. The package
// turns a [genome.Data] snapshot plus [Filters] into two subsets:
//
//	visible, err := filter.Chromosomes(data, filters, cfg)
//	links, err := filter.Links(data, filters, cfg, visible)
//
// # Stages
//
// Both derivations are chains of named, pure stages that run in a fixed
// order. Reordering them changes the result.
//
// Chromosomes:
//
//  1. [VisibleChromosomes]: per-chromosome visible flag
//  2. [WithLinks]: endpoint of at least one link in the unfiltered data
//     (only when SkipChromosomesWithoutLinks)
//  3. [WithVisibleLinks]: endpoint of at least one link that survives the
//     link chain below (only when SkipChromosomesWithoutVisibleLinks)
//
// ShowAllChromosomes short-circuits the chain and returns every chromosome.
//
// Links:
//
//  1. [VisibleLinks]: both endpoint chromosomes visible
//  2. [ByIdentity]: identity within the inclusive identity bounds
//  3. [ByLength]: at least one endpoint feature within the inclusive length bounds
//  4. [ByAdjacency]: endpoint genome rows differ by exactly one, unless
//     drawAllLinks is set (only when OnlyShowAdjacentLinks)
//
// [Filters.Stages] lists the stages active for a given state.
//
// # Commands
//
// [Filters.ToggleReverse] and [Filters.ToggleVisible] are the only
// mutations. Callers that keep a snapshot for a running layout pass should
// mutate a [Filters.Clone] instead.
package filter
