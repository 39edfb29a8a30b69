package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/filter"
	"github.com/matzehuels/synteny/pkg/genome"
)

// Snapshot is the immutable input of one layout pass.
type Snapshot struct {
	Data    genome.Data
	Filters filter.Filters
	Config  config.Config
}

type view struct {
	chromosomes filter.ChromosomeSet
	order       []string
}

func (s Snapshot) view() (view, error) {
	if err := s.Filters.Validate(); err != nil {
		return view{}, err
	}
	visible, err := filter.Chromosomes(s.Data, s.Filters, s.Config)
	if err != nil {
		return view{}, err
	}
	return view{chromosomes: visible, order: filter.ChromosomeOrder(s.Filters, visible)}, nil
}

func (s Snapshot) links(v view) (filter.LinkSet, error) {
	return filter.Links(s.Data, s.Filters, s.Config, v.chromosomes)
}

// GenomeDistance returns the vertical distance between two genome rows.
// Layouts with fewer than two rows have no distance.
func GenomeDistance(cfg config.Config, rows int) float64 {
	if rows <= 1 {
		return 0
	}
	d := (cfg.Graphical.Height - cfg.Graphical.KaryoHeight) / float64(rows-1)
	// half-way values round up, also when negative
	return math.Floor(d + 0.5)
}

// OuterRadius returns the radius of the circular layout ring.
func OuterRadius(cfg config.Config) float64 {
	return 0.45 * math.Min(cfg.Graphical.Height, cfg.Graphical.Width)
}

func (s Snapshot) genomeDistance() float64 {
	return GenomeDistance(s.Config, len(s.Filters.Karyo.GenomeOrder))
}

func tickDistance(cfg config.Config) (float64, error) {
	d := cfg.Graphical.TickDistance
	if d <= 0 {
		return 0, errors.New(errors.ErrCodeTooSmall, "tickDistance is too small, it should be > 0")
	}
	return d, nil
}

// project maps a base-pair offset of a chromosome of the given length onto
// the segment [from, from+span].
func project(from, span, offset, length float64) float64 {
	return from + span*offset/length
}

// LinksOfKaryo returns the ids of all data links that touch chromosome id,
// in ascending order.
func LinksOfKaryo(data genome.Data, id string) ([]string, error) {
	if _, err := data.Chromosome(id); err != nil {
		return nil, err
	}
	var ids []string
	for _, lid := range data.LinkIDs() {
		src, dst, err := data.Endpoints(data.Links[lid])
		if err != nil {
			return nil, err
		}
		if src.Karyo() == id || dst.Karyo() == id {
			ids = append(ids, lid)
		}
	}
	return slices.Clip(ids), nil
}
