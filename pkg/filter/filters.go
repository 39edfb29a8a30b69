package filter

import (
	"maps"
	"slices"

	"github.com/matzehuels/synteny/pkg/errors"
)

// ChromosomeFilter is the display state of one chromosome.
type ChromosomeFilter struct {
	Reverse bool `json:"reverse"`
	Visible bool `json:"visible"`
}

// Karyo holds chromosome ordering and per-chromosome flags.
type Karyo struct {
	// Order is the circular draw order of chromosome ids.
	Order []string `json:"order"`
	// GenomeOrder lists genome ids by linear row; the index is the row.
	GenomeOrder []int                       `json:"genome_order"`
	Chromosomes map[string]ChromosomeFilter `json:"chromosomes"`
}

// LinkBounds are inclusive identity and length bounds for links.
type LinkBounds struct {
	MinLinkIdentity float64 `json:"minLinkIdentity"`
	MaxLinkIdentity float64 `json:"maxLinkIdentity"`
	MinLinkLength   float64 `json:"minLinkLength"`
	MaxLinkLength   float64 `json:"maxLinkLength"`
}

// Filters is the complete display filter state.
type Filters struct {
	Karyo Karyo      `json:"karyo"`
	Links LinkBounds `json:"links"`

	ShowAllChromosomes                 bool `json:"showAllChromosomes"`
	SkipChromosomesWithoutLinks        bool `json:"skipChromosomesWithoutLinks"`
	SkipChromosomesWithoutVisibleLinks bool `json:"skipChromosomesWithoutVisibleLinks"`
	OnlyShowAdjacentLinks              bool `json:"onlyShowAdjacentLinks"`
}

// Chromosome returns the display state of one chromosome.
func (f Filters) Chromosome(id string) (ChromosomeFilter, error) {
	c, ok := f.Karyo.Chromosomes[id]
	if !ok {
		return ChromosomeFilter{}, errors.New(errors.ErrCodeNotFound, "no filter entry for chromosome %q", id)
	}
	return c, nil
}

// Reversed reports whether a chromosome is drawn reverse-complemented.
// Chromosomes without a filter entry are drawn forward.
func (f Filters) Reversed(id string) bool {
	return f.Karyo.Chromosomes[id].Reverse
}

// GenomeIndex returns the linear row of a genome.
func (f Filters) GenomeIndex(genomeID int) (int, error) {
	i := slices.Index(f.Karyo.GenomeOrder, genomeID)
	if i < 0 {
		return 0, errors.New(errors.ErrCodeNotFound, "genome %d is not in genome_order", genomeID)
	}
	return i, nil
}

// Validate rejects an Order or GenomeOrder that lists an id more than once.
func (f Filters) Validate() error {
	seen := make(map[string]bool, len(f.Karyo.Order))
	for _, id := range f.Karyo.Order {
		if seen[id] {
			return errors.New(errors.ErrCodeInvalidInput, "chromosome %q appears twice in order", id)
		}
		seen[id] = true
	}
	rows := make(map[int]bool, len(f.Karyo.GenomeOrder))
	for _, g := range f.Karyo.GenomeOrder {
		if rows[g] {
			return errors.New(errors.ErrCodeInvalidInput, "genome %d appears twice in genome_order", g)
		}
		rows[g] = true
	}
	return nil
}

// ToggleReverse flips the reverse flag of one chromosome. An unknown id
// leaves the state unchanged.
func (f *Filters) ToggleReverse(id string) error {
	c, err := f.Chromosome(id)
	if err != nil {
		return err
	}
	c.Reverse = !c.Reverse
	f.Karyo.Chromosomes[id] = c
	return nil
}

// ToggleVisible flips the visible flag of one chromosome.
func (f *Filters) ToggleVisible(id string) error {
	c, err := f.Chromosome(id)
	if err != nil {
		return err
	}
	c.Visible = !c.Visible
	f.Karyo.Chromosomes[id] = c
	return nil
}

// Clone returns a deep copy of f.
func (f Filters) Clone() Filters {
	out := f
	out.Karyo.Order = slices.Clone(f.Karyo.Order)
	out.Karyo.GenomeOrder = slices.Clone(f.Karyo.GenomeOrder)
	out.Karyo.Chromosomes = maps.Clone(f.Karyo.Chromosomes)
	return out
}
