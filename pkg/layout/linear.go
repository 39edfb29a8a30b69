package layout

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/filter"
)

// tickOverhang is how far a linear tick extends beyond the chromosome box.
const tickOverhang = 5

// LinearKaryoCoords packs the visible chromosomes into genome rows.
func LinearKaryoCoords(s Snapshot) ([]KaryoCoord, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	return linearKaryos(s, v)
}

func linearKaryos(s Snapshot, v view) ([]KaryoCoord, error) {
	g := s.Config.Graphical
	spacer := g.KaryoDistance
	rows := len(s.Filters.Karyo.GenomeOrder)
	genomeDistance := s.genomeDistance()

	// every row holds one spacer less than it holds chromosomes
	total := make([]float64, rows)
	current := make([]float64, rows)
	for i := range total {
		total[i] = -spacer
	}
	for _, id := range v.chromosomes.IDs() {
		c := v.chromosomes[id]
		row, err := s.Filters.GenomeIndex(c.GenomeID)
		if err != nil {
			return nil, fmt.Errorf("chromosome %q: %w", id, err)
		}
		total[row] += c.Length + spacer
	}
	if rows == 0 {
		return []KaryoCoord{}, nil
	}
	maxTotal := slices.Max(total)

	coords := make([]KaryoCoord, 0, len(v.order))
	for _, id := range v.order {
		c := v.chromosomes[id]
		cf, err := s.Filters.Chromosome(id)
		if err != nil {
			return nil, err
		}
		row, err := s.Filters.GenomeIndex(c.GenomeID)
		if err != nil {
			return nil, fmt.Errorf("chromosome %q: %w", id, err)
		}

		width := c.Length / maxTotal * g.Width
		coord := KaryoCoord{
			Karyo:  id,
			X:      current[row] / maxTotal * g.Width,
			Y:      float64(row) * genomeDistance,
			Width:  width,
			Height: g.KaryoHeight,
			Genome: c.GenomeID,
		}
		if cf.Reverse {
			coord.X += width
			coord.Width = -width
		}
		current[row] += c.Length + spacer
		coords = append(coords, coord)
	}
	return coords, nil
}

// LinearLinkCoords projects the visible links onto the karyo boxes.
func LinearLinkCoords(s Snapshot, karyos []KaryoCoord) ([]LinkCoord, error) {
	v, err := s.view()
	if err != nil {
		return nil, err
	}
	links, err := s.links(v)
	if err != nil {
		return nil, err
	}
	return linearLinks(s, links, karyos)
}

func linearLinks(s Snapshot, links filter.LinkSet, karyos []KaryoCoord) ([]LinkCoord, error) {
	boxes := indexKaryos(karyos)
	linkKaryoDistance := s.Config.Graphical.LinkKaryoDistance

	coords := make([]LinkCoord, 0, len(links))
	for _, id := range links.IDs() {
		src, dst, err := s.Data.Endpoints(links[id])
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", id, err)
		}
		srcBox, ok := boxes[src.Karyo()]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "link %q: chromosome %q has no coordinates", id, src.Karyo())
		}
		dstBox, ok := boxes[dst.Karyo()]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "link %q: chromosome %q has no coordinates", id, dst.Karyo())
		}
		srcRow, err := s.Filters.GenomeIndex(src.Chromosome.GenomeID)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", id, err)
		}
		dstRow, err := s.Filters.GenomeIndex(dst.Chromosome.GenomeID)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", id, err)
		}

		// draw from the upper row to the lower row
		if srcRow > dstRow {
			src, dst = dst, src
			srcBox, dstBox = dstBox, srcBox
		}

		srcY := srcBox.Y + srcBox.Height + linkKaryoDistance
		dstY := dstBox.Y - linkKaryoDistance
		coords = append(coords, LinkCoord{
			LinkID:   id,
			Source0:  Point{X: project(srcBox.X, srcBox.Width, src.Feature.Start, src.Chromosome.Length), Y: srcY},
			Source1:  Point{X: project(srcBox.X, srcBox.Width, src.Feature.End, src.Chromosome.Length), Y: srcY},
			Target0:  Point{X: project(dstBox.X, dstBox.Width, dst.Feature.Start, dst.Chromosome.Length), Y: dstY},
			Target1:  Point{X: project(dstBox.X, dstBox.Width, dst.Feature.End, dst.Chromosome.Length), Y: dstY},
			Adjacent: math.Abs(float64(srcRow-dstRow)) == 1,
		})
	}
	return coords, nil
}

// LinearTickCoords places a tick every tickDistance base pairs along each
// karyo, including position 0 and, when it lands on a step, the length.
func LinearTickCoords(s Snapshot, karyos []KaryoCoord) ([]Tick, error) {
	step, err := tickDistance(s.Config)
	if err != nil {
		return nil, err
	}

	var ticks []Tick
	for _, k := range karyos {
		c, err := s.Data.Chromosome(k.Karyo)
		if err != nil {
			return nil, err
		}
		for pos := 0.0; pos <= c.Length; pos += step {
			x := project(k.X, k.Width, pos, c.Length)
			ticks = append(ticks, Tick{
				X1: x, Y1: k.Y - tickOverhang,
				X2: x, Y2: k.Y + k.Height + tickOverhang,
			})
		}
	}
	return ticks, nil
}

func indexKaryos(karyos []KaryoCoord) map[string]KaryoCoord {
	m := make(map[string]KaryoCoord, len(karyos))
	for _, k := range karyos {
		m[k.Karyo] = k
	}
	return m
}
