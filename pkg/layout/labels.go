package layout

import (
	"math"
	"strconv"

	"github.com/matzehuels/synteny/pkg/config"
)

const (
	genomeLabelBaseline     = 0.9
	chromosomeLabelBaseline = 0.85
)

// GenomeLabelCoords anchors one label per genome row, centred in the label
// column to the left of the rows.
func GenomeLabelCoords(s Snapshot) []LabelCoord {
	g := s.Config.Graphical
	genomeDistance := s.genomeDistance()

	labels := make([]LabelCoord, 0, len(s.Filters.Karyo.GenomeOrder))
	for row, genomeID := range s.Filters.Karyo.GenomeOrder {
		labels = append(labels, LabelCoord{
			Name: strconv.Itoa(genomeID),
			X:    g.GenomeLabelWidth / 2,
			Y:    float64(row)*genomeDistance + genomeLabelBaseline*g.KaryoHeight,
		})
	}
	return labels
}

// ChromosomeLabelCoords anchors one label at the middle of each karyo.
func ChromosomeLabelCoords(cfg config.Config, karyos []KaryoCoord) []LabelCoord {
	labels := make([]LabelCoord, 0, len(karyos))
	for _, k := range karyos {
		labels = append(labels, LabelCoord{
			Name: k.Karyo,
			X:    k.X + k.Width/2,
			Y:    k.Y + chromosomeLabelBaseline*cfg.Graphical.KaryoHeight,
		})
	}
	return labels
}

// FeatureLabelCoords anchors one label at the middle of each feature shape.
// Arrow labels are centred between the tail and the tip.
func FeatureLabelCoords(cfg config.Config, features []FeatureCoord) []LabelCoord {
	kh := cfg.Graphical.KaryoHeight

	labels := make([]LabelCoord, 0, len(features))
	for _, f := range features {
		label := LabelCoord{Name: f.ID}
		if f.Form == config.FormArrow && len(f.Arrow) == 7 {
			tail, tip := f.Arrow[0], f.Arrow[3]
			label.X = math.Min(tail.X, tip.X) + math.Abs(tip.X-tail.X)/2
			label.Y = tail.Y + kh/2
		} else {
			label.X = f.X + f.Width/2
			label.Y = f.Y + chromosomeLabelBaseline*kh
		}
		labels = append(labels, label)
	}
	return labels
}
