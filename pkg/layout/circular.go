package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/synteny/pkg/errors"
)

const fullTurn = 2 * math.Pi

// CircularKaryoCoords partitions the full turn among the chromosomes of the
// draw order. The ring total spans every chromosome of the data.
func CircularKaryoCoords(s Snapshot) ([]ArcCoord, error) {
	if err := s.Filters.Validate(); err != nil {
		return nil, err
	}
	spacer := s.Config.Graphical.KaryoDistance

	var total float64
	for _, c := range s.Data.Chromosomes {
		total += c.Length + spacer
	}

	current := -spacer
	arcs := make([]ArcCoord, 0, len(s.Filters.Karyo.Order))
	for _, id := range s.Filters.Karyo.Order {
		c, err := s.Data.Chromosome(id)
		if err != nil {
			return nil, fmt.Errorf("order: %w", err)
		}
		cf, err := s.Filters.Chromosome(id)
		if err != nil {
			return nil, err
		}

		arc := ArcCoord{Karyo: id, StartAngle: (current + spacer) / total * fullTurn}
		current += c.Length + spacer
		arc.EndAngle = current / total * fullTurn
		if cf.Reverse {
			arc.StartAngle, arc.EndAngle = arc.EndAngle, arc.StartAngle
		}
		arcs = append(arcs, arc)
	}
	return arcs, nil
}

// CircularLinkCoords maps both ends of every data link into the arcs of
// their chromosomes.
func CircularLinkCoords(s Snapshot, arcs []ArcCoord) ([]ChordCoord, error) {
	byKaryo := make(map[string]ArcCoord, len(arcs))
	for _, a := range arcs {
		byKaryo[a.Karyo] = a
	}

	chords := make([]ChordCoord, 0, len(s.Data.Links))
	for _, id := range s.Data.LinkIDs() {
		src, dst, err := s.Data.Endpoints(s.Data.Links[id])
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", id, err)
		}
		srcArc, ok := byKaryo[src.Karyo()]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "link %q: chromosome %q has no arc", id, src.Karyo())
		}
		dstArc, ok := byKaryo[dst.Karyo()]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "link %q: chromosome %q has no arc", id, dst.Karyo())
		}

		chords = append(chords, ChordCoord{
			LinkID: id,
			Source: AngleSpan{
				StartAngle: arcAngle(srcArc, src.Feature.Start, src.Chromosome.Length),
				EndAngle:   arcAngle(srcArc, src.Feature.End, src.Chromosome.Length),
			},
			Target: AngleSpan{
				StartAngle: arcAngle(dstArc, dst.Feature.Start, dst.Chromosome.Length),
				EndAngle:   arcAngle(dstArc, dst.Feature.End, dst.Chromosome.Length),
			},
		})
	}
	return chords, nil
}

// CircularTickCoords returns the tick angles of every arc.
func CircularTickCoords(s Snapshot, arcs []ArcCoord) ([]float64, error) {
	step, err := tickDistance(s.Config)
	if err != nil {
		return nil, err
	}

	var ticks []float64
	for _, a := range arcs {
		c, err := s.Data.Chromosome(a.Karyo)
		if err != nil {
			return nil, err
		}
		for pos := 0.0; pos <= c.Length; pos += step {
			ticks = append(ticks, arcAngle(a, pos, c.Length))
		}
	}
	return ticks, nil
}

func arcAngle(a ArcCoord, offset, length float64) float64 {
	return project(a.StartAngle, a.EndAngle-a.StartAngle, offset, length)
}
