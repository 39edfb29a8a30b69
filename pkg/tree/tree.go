package tree

import (
	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/genome"
)

// Params sizes and places the tree panel.
type Params struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"`
	// OffsetY is the vertical shift of the panel relative to the first row.
	OffsetY float64 `json:"offsetY"`
}

// HasTree reports whether data carries a non-empty tree.
func HasTree(data genome.Data) bool {
	return !data.Tree.IsEmpty()
}

// ParamsFor derives the tree panel of a linear layout whose rows are
// genomeDistance apart.
func ParamsFor(cfg config.Config, genomeDistance float64) (Params, error) {
	if err := ValidateOrientation(cfg.Tree.Orientation); err != nil {
		return Params{}, err
	}
	g := cfg.Graphical
	return Params{
		Width:       g.TreeWidth,
		Height:      g.Height + genomeDistance - g.KaryoHeight,
		Orientation: cfg.Tree.Orientation,
		OffsetY:     0.5 * (g.KaryoHeight - genomeDistance),
	}, nil
}

// ValidateOrientation accepts "left" and "right".
func ValidateOrientation(o string) error {
	switch o {
	case config.OrientationLeft, config.OrientationRight:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "tree orientation %q must be %q or %q",
		o, config.OrientationLeft, config.OrientationRight)
}

// Leaves returns the names of the leaves below n, left to right.
func Leaves(n *genome.TreeNode) []string {
	if n.IsEmpty() {
		return nil
	}
	if len(n.Children) == 0 {
		return []string{n.Name}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, Leaves(c)...)
	}
	return out
}
