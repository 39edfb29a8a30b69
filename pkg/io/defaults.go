package io

import (
	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/filter"
	"github.com/matzehuels/synteny/pkg/genome"
)

// DefaultFilters shows every chromosome of data forward, orders them by id
// and genomes by genome id, and takes the link bounds from cfg.
func DefaultFilters(data genome.Data, cfg config.Config) filter.Filters {
	ids := data.ChromosomeIDs()
	chromosomes := make(map[string]filter.ChromosomeFilter, len(ids))
	for _, id := range ids {
		chromosomes[id] = filter.ChromosomeFilter{Visible: true}
	}
	return filter.Filters{
		Karyo: filter.Karyo{
			Order:       ids,
			GenomeOrder: data.GenomeIDs(),
			Chromosomes: chromosomes,
		},
		Links: filter.LinkBounds{
			MinLinkIdentity: cfg.MinLinkIdentity,
			MaxLinkIdentity: cfg.MaxLinkIdentity,
			MinLinkLength:   cfg.MinLinkLength,
			MaxLinkLength:   cfg.MaxLinkLength,
		},
	}
}
