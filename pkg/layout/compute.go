package layout

import (
	"fmt"

	"github.com/matzehuels/synteny/pkg/config"
)

// Frame positions the content groups of a linear drawing on the canvas.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// ContentX shifts karyos, links, ticks, features and their labels.
	ContentX float64 `json:"contentX"`
	// GenomeLabelX shifts the genome label column.
	GenomeLabelX float64 `json:"genomeLabelX"`
	// TreeX shifts the tree panel. Only meaningful when Tree is set.
	TreeX float64 `json:"treeX"`
	Tree  bool    `json:"tree"`
}

// NewFrame derives the canvas frame of a linear drawing. The genome label
// column sits to the left of the rows; the tree sits left of everything or
// right of the rows depending on its orientation.
func NewFrame(cfg config.Config, hasTree bool) Frame {
	g := cfg.Graphical
	f := Frame{Width: g.Width, Height: g.Height}

	if cfg.Labels.ShowGenomeLabels() {
		f.ContentX += g.GenomeLabelWidth
		f.Width += g.GenomeLabelWidth
	}
	if cfg.Tree.DrawTree && hasTree {
		f.Tree = true
		f.Width += g.TreeWidth
		if cfg.Tree.Orientation == config.OrientationLeft {
			f.ContentX += g.TreeWidth
			f.GenomeLabelX = g.TreeWidth
		} else {
			f.TreeX = f.ContentX + g.Width
		}
	}
	return f
}

// Linear is a complete linear drawing.
type Linear struct {
	Karyos           []KaryoCoord   `json:"karyos"`
	Links            []LinkCoord    `json:"links"`
	Ticks            []Tick         `json:"ticks"`
	Features         []FeatureCoord `json:"features"`
	GenomeLabels     []LabelCoord   `json:"genomeLabels,omitempty"`
	ChromosomeLabels []LabelCoord   `json:"chromosomeLabels,omitempty"`
	FeatureLabels    []LabelCoord   `json:"featureLabels,omitempty"`
	GenomeDistance   float64        `json:"genomeDistance"`
	Frame            Frame          `json:"frame"`
}

// Circular is a complete circular drawing, centred on the canvas.
type Circular struct {
	Karyos      []ArcCoord   `json:"karyos"`
	Links       []ChordCoord `json:"links"`
	Ticks       []float64    `json:"ticks"`
	OuterRadius float64      `json:"outerRadius"`
	TickSize    float64      `json:"tickSize"`
	Center      Point        `json:"center"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
}

// Result holds the drawing of whichever layout was computed.
type Result struct {
	Layout   string    `json:"layout"`
	Linear   *Linear   `json:"linear,omitempty"`
	Circular *Circular `json:"circular,omitempty"`
}

// ComputeLinear runs the linear engine: karyos, links, ticks, features and
// the labels enabled in the configuration.
func ComputeLinear(s Snapshot) (Linear, error) {
	v, err := s.view()
	if err != nil {
		return Linear{}, fmt.Errorf("filter chromosomes: %w", err)
	}
	links, err := s.links(v)
	if err != nil {
		return Linear{}, fmt.Errorf("filter links: %w", err)
	}

	karyos, err := linearKaryos(s, v)
	if err != nil {
		return Linear{}, fmt.Errorf("karyos: %w", err)
	}
	linkCoords, err := linearLinks(s, links, karyos)
	if err != nil {
		return Linear{}, fmt.Errorf("links: %w", err)
	}
	ticks, err := LinearTickCoords(s, karyos)
	if err != nil {
		return Linear{}, fmt.Errorf("ticks: %w", err)
	}
	features, err := LinearFeatureCoords(s, karyos)
	if err != nil {
		return Linear{}, fmt.Errorf("features: %w", err)
	}

	out := Linear{
		Karyos:         karyos,
		Links:          linkCoords,
		Ticks:          ticks,
		Features:       features,
		GenomeDistance: s.genomeDistance(),
		Frame:          NewFrame(s.Config, !s.Data.Tree.IsEmpty()),
	}
	labels := s.Config.Labels
	if labels.ShowGenomeLabels() {
		out.GenomeLabels = GenomeLabelCoords(s)
	}
	if labels.ShowChromosomeLabels() {
		out.ChromosomeLabels = ChromosomeLabelCoords(s.Config, karyos)
	}
	if labels.ShowFeatureLabels() {
		out.FeatureLabels = FeatureLabelCoords(s.Config, features)
	}
	return out, nil
}

// ComputeCircular runs the circular engine.
func ComputeCircular(s Snapshot) (Circular, error) {
	arcs, err := CircularKaryoCoords(s)
	if err != nil {
		return Circular{}, fmt.Errorf("karyos: %w", err)
	}
	chords, err := CircularLinkCoords(s, arcs)
	if err != nil {
		return Circular{}, fmt.Errorf("links: %w", err)
	}
	ticks, err := CircularTickCoords(s, arcs)
	if err != nil {
		return Circular{}, fmt.Errorf("ticks: %w", err)
	}

	g := s.Config.Graphical
	return Circular{
		Karyos:      arcs,
		Links:       chords,
		Ticks:       ticks,
		OuterRadius: OuterRadius(s.Config),
		TickSize:    s.Config.Circular.TickSize,
		Center:      Point{X: g.Width / 2, Y: g.Height / 2},
		Width:       g.Width,
		Height:      g.Height,
	}, nil
}
