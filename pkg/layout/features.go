package layout

import (
	"math"

	"github.com/matzehuels/synteny/pkg/config"
)

// Fixed vertical fractions of the feature height and the horizontal break
// of the feature width that shape arrow features.
const (
	ArrowShaftTop    = 1.0 / 5
	ArrowTip         = 1.0 / 2
	ArrowShaftBottom = 4.0 / 5
	ArrowHeadStart   = 5.0 / 6
)

// LinearFeatureCoords computes the shapes of all shown features that lie on
// a laid-out karyo. Features of unsupported groups or hidden kinds are
// skipped, as are features on chromosomes that were filtered out.
func LinearFeatureCoords(s Snapshot, karyos []KaryoCoord) ([]FeatureCoord, error) {
	boxes := indexKaryos(karyos)
	features := s.Config.Features

	var coords []FeatureCoord
	for _, id := range s.Data.FeatureIDs() {
		f := s.Data.Features[id]
		kind, ok := features.Kind(f.Group)
		if !ok || !features.Shown(f.Group) {
			continue
		}
		box, ok := boxes[f.Karyo]
		if !ok {
			continue
		}
		c, err := s.Data.Chromosome(f.Karyo)
		if err != nil {
			return nil, err
		}

		// width keeps the sign of the karyo width, so reversed karyos
		// mirror their features
		x := project(box.X, box.Width, math.Abs(f.Start), c.Length)
		width := box.Width * f.Length() / c.Length

		coord := FeatureCoord{
			ID:     id,
			Karyo:  f.Karyo,
			Group:  f.Group,
			Form:   kind.Form,
			X:      x,
			Y:      box.Y,
			Width:  width,
			Height: kind.Height,
		}
		if kind.Form == config.FormArrow {
			coord.Arrow = arrow(x, box.Y, width, kind.Height)
		}
		coords = append(coords, coord)
	}
	return coords, nil
}

// arrow builds the seven-point notch-tailed arrow polygon.
func arrow(x, y, w, h float64) []Point {
	head := x + ArrowHeadStart*w
	return []Point{
		{X: x, Y: y + ArrowShaftTop*h},
		{X: head, Y: y + ArrowShaftTop*h},
		{X: head, Y: y},
		{X: x + w, Y: y + ArrowTip*h},
		{X: head, Y: y + h},
		{X: head, Y: y + ArrowShaftBottom*h},
		{X: x, Y: y + ArrowShaftBottom*h},
	}
}
