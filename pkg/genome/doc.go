// Package genome holds the in-memory snapshot of a whole-genome alignment.
//
// # Overview
//
// A [Data] value is the immutable input to one layout pass. It contains
// three id-keyed maps:
//
//   - Chromosomes (karyos): each belongs to one genome and has a length in bp
//   - Features: annotated sub-regions of a chromosome (genes, repeats, link ends)
//   - Links: pairwise homology relations between two features, scored by identity
//
// An optional phylogenetic [TreeNode] describes how the genomes relate.
//
// # Preconditions
//
// Every link must reference two existing features and every feature must
// reference an existing chromosome. A dangling reference is a data error and
// surfaces immediately as an [errors.ErrCodeNotFound] error from
// [Data.Endpoints] or [Data.Validate]; it is never skipped.
//
// # Ordering
//
// Map iteration order is random in Go, so all consumers iterate through the
// sorted helpers [Data.ChromosomeIDs], [Data.FeatureIDs] and [Data.LinkIDs].
// This keeps every coordinate array reproducible across runs.
//
// [errors.ErrCodeNotFound]: github.com/matzehuels/synteny/pkg/errors
package genome
