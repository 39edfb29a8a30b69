package color

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
)

// Scale is an ordered list of domain stops with one color per stop.
type Scale struct {
	domain []float64
	colors []colorful.Color
}

// NewScale builds a scale from ascending domain stops and hex colors.
func NewScale(domain []float64, colors []string) (Scale, error) {
	if len(domain) == 0 || len(domain) != len(colors) {
		return Scale{}, errors.New(errors.ErrCodeInvalidInput, "scale needs one color per domain stop, got %d stops and %d colors", len(domain), len(colors))
	}
	if !sort.Float64sAreSorted(domain) {
		return Scale{}, errors.New(errors.ErrCodeInvalidInput, "scale domain %v is not ascending", domain)
	}

	s := Scale{
		domain: append([]float64(nil), domain...),
		colors: make([]colorful.Color, len(colors)),
	}
	for i, hex := range colors {
		if err := errors.RequireValue("color", hex); err != nil {
			return Scale{}, err
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Scale{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", hex)
		}
		s.colors[i] = c
	}
	return s, nil
}

// At returns the color for v.
func (s Scale) At(v float64) colorful.Color {
	n := len(s.domain)
	if n == 0 {
		return colorful.Color{}
	}
	if v <= s.domain[0] {
		return s.colors[0]
	}
	if v >= s.domain[n-1] {
		return s.colors[n-1]
	}

	// right bisection: the last stop <= v starts the segment, so duplicate
	// stops resolve to the rightmost one
	i := sort.Search(n, func(k int) bool { return s.domain[k] > v }) - 1
	lo, hi := s.domain[i], s.domain[i+1]
	return s.colors[i].BlendRgb(s.colors[i+1], (v-lo)/(hi-lo))
}

// Hex returns the color for v as a lowercase #rrggbb string.
func (s Scale) Hex(v float64) string { return s.At(v).Hex() }

// Identity builds the link-identity scale of cfg.
func Identity(cfg config.Config) (Scale, error) {
	return NewScale(
		[]float64{0, cfg.MinLinkIdentity, cfg.MidLinkIdentity, cfg.MaxLinkIdentity, 100},
		[]string{
			cfg.MinLinkIdentityColor, cfg.MinLinkIdentityColor,
			cfg.MidLinkIdentityColor,
			cfg.MaxLinkIdentityColor, cfg.MaxLinkIdentityColor,
		},
	)
}

// Genome builds the genome-row scale of cfg for genomeCount rows. A single
// row maps to the start color.
func Genome(cfg config.Config, genomeCount int) (Scale, error) {
	last := float64(max(genomeCount-1, 0))
	return NewScale(
		[]float64{0, last},
		[]string{cfg.Linear.StartLineColor, cfg.Linear.EndLineColor},
	)
}
