package filter

import (
	"fmt"
	"maps"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/genome"
)

// Chromosomes returns the visible chromosomes of data.
func Chromosomes(data genome.Data, f Filters, cfg config.Config) (ChromosomeSet, error) {
	all := ChromosomeSet(maps.Clone(data.Chromosomes))
	if f.ShowAllChromosomes {
		return all, nil
	}

	visible, err := VisibleChromosomes(all, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageVisibleChromosomes, err)
	}
	if f.SkipChromosomesWithoutLinks {
		visible, err = WithLinks(visible, data, LinkSet(data.Links))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StageWithLinks, err)
		}
	}
	if f.SkipChromosomesWithoutVisibleLinks {
		visible, err = WithVisibleLinks(visible, data, f, cfg.Linear.DrawAllLinks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StageWithVisibleLinks, err)
		}
	}
	return visible, nil
}

// ChromosomeOrder returns the ids of Karyo.Order that are in visible,
// keeping their relative order.
func ChromosomeOrder(f Filters, visible ChromosomeSet) []string {
	order := make([]string, 0, len(visible))
	for _, id := range f.Karyo.Order {
		if visible.Has(id) {
			order = append(order, id)
		}
	}
	return order
}

// Links returns the links of data that survive the link chain for the
// given visible chromosomes.
func Links(data genome.Data, f Filters, cfg config.Config, visible ChromosomeSet) (LinkSet, error) {
	return links(data, f, cfg.Linear.DrawAllLinks, visible)
}

func links(data genome.Data, f Filters, drawAllLinks bool, visible ChromosomeSet) (LinkSet, error) {
	out, err := VisibleLinks(data, visible)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageVisibleLinks, err)
	}
	out = ByIdentity(out, f.Links)
	out, err = ByLength(out, data, f.Links)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageByLength, err)
	}
	if f.OnlyShowAdjacentLinks {
		out, err = ByAdjacency(out, data, f, drawAllLinks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StageByAdjacency, err)
		}
	}
	return out, nil
}

// Stages lists the stages that run for f, chromosome stages first.
func (f Filters) Stages() []string {
	var stages []string
	if !f.ShowAllChromosomes {
		stages = append(stages, StageVisibleChromosomes)
		if f.SkipChromosomesWithoutLinks {
			stages = append(stages, StageWithLinks)
		}
		if f.SkipChromosomesWithoutVisibleLinks {
			stages = append(stages, StageWithVisibleLinks)
		}
	}
	stages = append(stages, StageVisibleLinks, StageByIdentity, StageByLength)
	if f.OnlyShowAdjacentLinks {
		stages = append(stages, StageByAdjacency)
	}
	return stages
}
