package filter

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/synteny/pkg/genome"
)

// Stage names in execution order.
const (
	StageVisibleChromosomes = "visible-chromosomes"
	StageWithLinks          = "with-links"
	StageWithVisibleLinks   = "with-visible-links"
	StageVisibleLinks       = "visible-links"
	StageByIdentity         = "by-identity"
	StageByLength           = "by-length"
	StageByAdjacency        = "by-adjacency"
)

// ChromosomeSet is a subset of the data chromosomes keyed by id.
type ChromosomeSet map[string]genome.Chromosome

// Has reports whether id is in the set.
func (s ChromosomeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the ids in ascending order.
func (s ChromosomeSet) IDs() []string { return slices.Sorted(maps.Keys(s)) }

// LinkSet is a subset of the data links keyed by id.
type LinkSet map[string]genome.Link

// IDs returns the ids in ascending order.
func (s LinkSet) IDs() []string { return slices.Sorted(maps.Keys(s)) }

// VisibleChromosomes keeps chromosomes whose visible flag is set. A
// chromosome without a filter entry is an error.
func VisibleChromosomes(in ChromosomeSet, f Filters) (ChromosomeSet, error) {
	out := make(ChromosomeSet, len(in))
	for _, id := range in.IDs() {
		cf, err := f.Chromosome(id)
		if err != nil {
			return nil, err
		}
		if cf.Visible {
			out[id] = in[id]
		}
	}
	return out, nil
}

// WithLinks keeps chromosomes that are an endpoint of at least one link.
func WithLinks(in ChromosomeSet, data genome.Data, links LinkSet) (ChromosomeSet, error) {
	linked := make(map[string]bool)
	for _, id := range links.IDs() {
		src, dst, err := data.Endpoints(links[id])
		if err != nil {
			return nil, err
		}
		linked[src.Karyo()] = true
		linked[dst.Karyo()] = true
	}

	out := make(ChromosomeSet, len(in))
	for id, c := range in {
		if linked[id] {
			out[id] = c
		}
	}
	return out, nil
}

// WithVisibleLinks keeps chromosomes that are an endpoint of at least one
// link surviving the full link chain computed against in.
func WithVisibleLinks(in ChromosomeSet, data genome.Data, f Filters, drawAllLinks bool) (ChromosomeSet, error) {
	kept, err := links(data, f, drawAllLinks, in)
	if err != nil {
		return nil, err
	}
	return WithLinks(in, data, kept)
}

// VisibleLinks keeps links whose source and target chromosomes are both
// in visible.
func VisibleLinks(data genome.Data, visible ChromosomeSet) (LinkSet, error) {
	out := make(LinkSet)
	for _, id := range data.LinkIDs() {
		l := data.Links[id]
		src, dst, err := data.Endpoints(l)
		if err != nil {
			return nil, err
		}
		if visible.Has(src.Karyo()) && visible.Has(dst.Karyo()) {
			out[id] = l
		}
	}
	return out, nil
}

// ByIdentity keeps links whose identity lies in the inclusive bounds.
func ByIdentity(in LinkSet, b LinkBounds) LinkSet {
	out := make(LinkSet, len(in))
	for id, l := range in {
		if l.Identity >= b.MinLinkIdentity && l.Identity <= b.MaxLinkIdentity {
			out[id] = l
		}
	}
	return out
}

// ByLength keeps links where at least one endpoint feature length lies in
// the inclusive bounds.
func ByLength(in LinkSet, data genome.Data, b LinkBounds) (LinkSet, error) {
	within := func(v float64) bool { return v >= b.MinLinkLength && v <= b.MaxLinkLength }

	out := make(LinkSet, len(in))
	for _, id := range in.IDs() {
		l := in[id]
		src, dst, err := data.Endpoints(l)
		if err != nil {
			return nil, err
		}
		if within(src.Feature.Length()) || within(dst.Feature.Length()) {
			out[id] = l
		}
	}
	return out, nil
}

// ByAdjacency keeps links between genomes on neighbouring rows. With
// drawAllLinks every link is kept.
func ByAdjacency(in LinkSet, data genome.Data, f Filters, drawAllLinks bool) (LinkSet, error) {
	out := make(LinkSet, len(in))
	for _, id := range in.IDs() {
		l := in[id]
		adjacent, err := Adjacent(data, f, l)
		if err != nil {
			return nil, err
		}
		if adjacent || drawAllLinks {
			out[id] = l
		}
	}
	return out, nil
}

// Adjacent reports whether the endpoint genomes of l sit on rows that
// differ by exactly one.
func Adjacent(data genome.Data, f Filters, l genome.Link) (bool, error) {
	src, dst, err := data.Endpoints(l)
	if err != nil {
		return false, err
	}
	i, err := f.GenomeIndex(src.Chromosome.GenomeID)
	if err != nil {
		return false, err
	}
	j, err := f.GenomeIndex(dst.Chromosome.GenomeID)
	if err != nil {
		return false, err
	}
	return math.Abs(float64(i-j)) == 1, nil
}
