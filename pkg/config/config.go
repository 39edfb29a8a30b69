package config

import (
	"maps"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/synteny/pkg/errors"
)

const (
	LayoutLinear   = "linear"
	LayoutCircular = "circular"

	OrientationLeft  = "left"
	OrientationRight = "right"

	FormRect  = "rect"
	FormArrow = "arrow"
)

// Config is the complete graphical configuration.
type Config struct {
	Graphical GraphicalParameters `json:"graphicalParameters" toml:"graphicalParameters" yaml:"graphicalParameters"`
	Linear    Linear              `json:"linear" toml:"linear" yaml:"linear"`
	Circular  Circular            `json:"circular" toml:"circular" yaml:"circular"`

	MinLinkIdentity float64 `json:"minLinkIdentity" toml:"minLinkIdentity" yaml:"minLinkIdentity"`
	MidLinkIdentity float64 `json:"midLinkIdentity" toml:"midLinkIdentity" yaml:"midLinkIdentity"`
	MaxLinkIdentity float64 `json:"maxLinkIdentity" toml:"maxLinkIdentity" yaml:"maxLinkIdentity"`

	MinLinkIdentityColor string `json:"minLinkIdentityColor" toml:"minLinkIdentityColor" yaml:"minLinkIdentityColor"`
	MidLinkIdentityColor string `json:"midLinkIdentityColor" toml:"midLinkIdentityColor" yaml:"midLinkIdentityColor"`
	MaxLinkIdentityColor string `json:"maxLinkIdentityColor" toml:"maxLinkIdentityColor" yaml:"maxLinkIdentityColor"`

	// Link length bounds seed the link filter when no filter file sets them.
	MinLinkLength float64 `json:"minLinkLength" toml:"minLinkLength" yaml:"minLinkLength"`
	MaxLinkLength float64 `json:"maxLinkLength" toml:"maxLinkLength" yaml:"maxLinkLength"`

	Layout   string   `json:"layout" toml:"layout" yaml:"layout"`
	Tree     Tree     `json:"tree" toml:"tree" yaml:"tree"`
	Features Features `json:"features" toml:"features" yaml:"features"`
	Labels   Labels   `json:"labels" toml:"labels" yaml:"labels"`
}

// GraphicalParameters are the pixel and base-pair measures of the drawing.
type GraphicalParameters struct {
	Width             float64 `json:"width" toml:"width" yaml:"width"`
	Height            float64 `json:"height" toml:"height" yaml:"height"`
	KaryoHeight       float64 `json:"karyoHeight" toml:"karyoHeight" yaml:"karyoHeight"`
	KaryoDistance     float64 `json:"karyoDistance" toml:"karyoDistance" yaml:"karyoDistance"`
	LinkKaryoDistance float64 `json:"linkKaryoDistance" toml:"linkKaryoDistance" yaml:"linkKaryoDistance"`
	TickDistance      float64 `json:"tickDistance" toml:"tickDistance" yaml:"tickDistance"`
	TreeWidth         float64 `json:"treeWidth" toml:"treeWidth" yaml:"treeWidth"`
	GenomeLabelWidth  float64 `json:"genomeLabelWidth" toml:"genomeLabelWidth" yaml:"genomeLabelWidth"`
	LinkOpacity       float64 `json:"linkOpacity" toml:"linkOpacity" yaml:"linkOpacity"`
}

// Linear holds options that only apply to the linear layout.
type Linear struct {
	DrawAllLinks   bool   `json:"drawAllLinks" toml:"drawAllLinks" yaml:"drawAllLinks"`
	StartLineColor string `json:"startLineColor" toml:"startLineColor" yaml:"startLineColor"`
	EndLineColor   string `json:"endLineColor" toml:"endLineColor" yaml:"endLineColor"`
}

// Circular holds options that only apply to the circular layout.
type Circular struct {
	TickSize float64 `json:"tickSize" toml:"tickSize" yaml:"tickSize"`
}

// Tree controls the phylogenetic tree panel.
type Tree struct {
	DrawTree    bool   `json:"drawTree" toml:"drawTree" yaml:"drawTree"`
	Orientation string `json:"orientation" toml:"orientation" yaml:"orientation"`
}

// FeatureKind describes how one feature group is drawn.
type FeatureKind struct {
	Form    string  `json:"form" toml:"form" yaml:"form"`
	Color   string  `json:"color" toml:"color" yaml:"color"`
	Height  float64 `json:"height" toml:"height" yaml:"height"`
	Visible bool    `json:"visible" toml:"visible" yaml:"visible"`
}

// Features lists the supported feature kinds keyed by group name.
type Features struct {
	ShowAllFeatures   bool                   `json:"showAllFeatures" toml:"showAllFeatures" yaml:"showAllFeatures"`
	SupportedFeatures map[string]FeatureKind `json:"supportedFeatures" toml:"supportedFeatures" yaml:"supportedFeatures"`
}

// Kind returns the feature kind for a group and whether it is supported.
func (f Features) Kind(group string) (FeatureKind, bool) {
	k, ok := f.SupportedFeatures[group]
	return k, ok
}

// Shown reports whether features of the given group are drawn.
func (f Features) Shown(group string) bool {
	k, ok := f.SupportedFeatures[group]
	return ok && (k.Visible || f.ShowAllFeatures)
}

// Labels controls the three label families and their font sizes.
type Labels struct {
	ShowAllLabels bool             `json:"showAllLabels" toml:"showAllLabels" yaml:"showAllLabels"`
	Chromosome    ChromosomeLabels `json:"chromosome" toml:"chromosome" yaml:"chromosome"`
	Genome        GenomeLabels     `json:"genome" toml:"genome" yaml:"genome"`
	Features      FeatureLabels    `json:"features" toml:"features" yaml:"features"`
}

type ChromosomeLabels struct {
	ShowChromosomeLabels bool    `json:"showChromosomeLabels" toml:"showChromosomeLabels" yaml:"showChromosomeLabels"`
	Size                 float64 `json:"size" toml:"size" yaml:"size"`
}

type GenomeLabels struct {
	ShowGenomeLabels bool    `json:"showGenomeLabels" toml:"showGenomeLabels" yaml:"showGenomeLabels"`
	Size             float64 `json:"size" toml:"size" yaml:"size"`
}

type FeatureLabels struct {
	ShowFeatureLabels bool    `json:"showFeatureLabels" toml:"showFeatureLabels" yaml:"showFeatureLabels"`
	Size              float64 `json:"size" toml:"size" yaml:"size"`
}

// ShowGenomeLabels reports whether genome labels are drawn.
func (l Labels) ShowGenomeLabels() bool { return l.ShowAllLabels || l.Genome.ShowGenomeLabels }

// ShowChromosomeLabels reports whether chromosome labels are drawn.
func (l Labels) ShowChromosomeLabels() bool {
	return l.ShowAllLabels || l.Chromosome.ShowChromosomeLabels
}

// ShowFeatureLabels reports whether feature labels are drawn.
func (l Labels) ShowFeatureLabels() bool { return l.ShowAllLabels || l.Features.ShowFeatureLabels }

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Graphical: GraphicalParameters{
			Width:             1000,
			Height:            1000,
			KaryoHeight:       30,
			KaryoDistance:     10,
			LinkKaryoDistance: 10,
			TickDistance:      100,
			TreeWidth:         300,
			GenomeLabelWidth:  150,
			LinkOpacity:       0.9,
		},
		Linear: Linear{
			StartLineColor: "#49006a",
			EndLineColor:   "#1d91c0",
		},
		Circular: Circular{TickSize: 5},

		MinLinkIdentity: 40,
		MidLinkIdentity: 60,
		MaxLinkIdentity: 100,

		MinLinkIdentityColor: "#D21414",
		MidLinkIdentityColor: "#FFEE05",
		MaxLinkIdentityColor: "#1DAD0A",

		MinLinkLength: 100,
		MaxLinkLength: 5000,

		Layout: LayoutLinear,
		Tree:   Tree{Orientation: OrientationLeft},
		Features: Features{
			SupportedFeatures: map[string]FeatureKind{
				"gen":            {Form: FormRect, Color: "#E2EDFF", Height: 30},
				"invertedRepeat": {Form: FormArrow, Color: "#e7d3e2", Height: 30},
			},
		},
		Labels: Labels{
			Chromosome: ChromosomeLabels{ShowChromosomeLabels: true, Size: 10},
			Genome:     GenomeLabels{ShowGenomeLabels: true, Size: 14},
			Features:   FeatureLabels{Size: 8},
		},
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Features.SupportedFeatures = maps.Clone(c.Features.SupportedFeatures)
	return out
}

// Validate checks enumerated fields, colors and feature kinds.
// Feature kinds are checked in sorted order so the first problem is stable.
func (c Config) Validate() error {
	switch c.Layout {
	case LayoutLinear, LayoutCircular:
	default:
		return errors.New(errors.ErrCodeInvalidLayout, "layout must be %q or %q, got %q", LayoutLinear, LayoutCircular, c.Layout)
	}
	switch c.Tree.Orientation {
	case OrientationLeft, OrientationRight:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "tree orientation must be %q or %q, got %q", OrientationLeft, OrientationRight, c.Tree.Orientation)
	}
	g := c.Graphical
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"width", g.Width},
		{"height", g.Height},
		{"karyoDistance", g.KaryoDistance},
		{"karyoHeight", g.KaryoHeight},
		{"tickDistance", g.TickDistance},
	} {
		if err := checkFinite(p.name, p.v); err != nil {
			return err
		}
		if p.v <= 0 {
			return errors.New(errors.ErrCodeTooSmall, "%s is too small, it should be > 0", p.name)
		}
	}
	if err := checkFinite("linkOpacity", g.LinkOpacity); err != nil {
		return err
	}
	if g.LinkOpacity < 0 || g.LinkOpacity > 1 {
		return errors.New(errors.ErrCodeOutOfRange, "linkOpacity must be between 0 and 1, got %v", g.LinkOpacity)
	}
	for _, s := range []string{
		c.MinLinkIdentityColor, c.MidLinkIdentityColor, c.MaxLinkIdentityColor,
		c.Linear.StartLineColor, c.Linear.EndLineColor,
	} {
		if err := checkColor(s); err != nil {
			return err
		}
	}
	for _, name := range slices.Sorted(maps.Keys(c.Features.SupportedFeatures)) {
		k := c.Features.SupportedFeatures[name]
		if k.Form != FormRect && k.Form != FormArrow {
			return errors.New(errors.ErrCodeUnsupportedFeature, "feature %q: form must be %q or %q, got %q", name, FormRect, FormArrow, k.Form)
		}
		if k.Color != "" {
			if err := checkColor(k.Color); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New(errors.ErrCodeNotANumber, "%s is not a number: %v", name, v)
	}
	return nil
}

func checkColor(s string) error {
	if err := errors.RequireValue("color", s); err != nil {
		return err
	}
	if _, err := colorful.Hex(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return nil
}
