package genome

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/synteny/pkg/errors"
)

// Chromosome is a single karyo of one genome.
type Chromosome struct {
	GenomeID int     `json:"genome_id"`
	Length   float64 `json:"length"`
	Seq      string  `json:"seq,omitempty"`
}

// Feature is an annotated region on a chromosome. Start may exceed End; the
// region always spans |End-Start| base pairs.
type Feature struct {
	Karyo string  `json:"karyo"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Group string  `json:"group,omitempty"`
}

// Length returns the absolute extent of the feature in base pairs.
func (f Feature) Length() float64 { return math.Abs(f.End - f.Start) }

// Link connects two features. The data carries no direction; layout engines
// pick the canonical source and target themselves.
type Link struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Identity float64 `json:"identity"`
}

// TreeNode is one node of the optional phylogenetic tree.
type TreeNode struct {
	Name     string      `json:"name,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// IsEmpty reports whether the node carries neither a name nor children.
func (n *TreeNode) IsEmpty() bool {
	return n == nil || (n.Name == "" && len(n.Children) == 0)
}

// Data is the complete alignment snapshot consumed by filters and layouts.
type Data struct {
	Chromosomes map[string]Chromosome
	Features    map[string]Feature
	Links       map[string]Link
	Tree        *TreeNode
}

// Endpoint is one resolved end of a link.
type Endpoint struct {
	FeatureID  string
	Feature    Feature
	Chromosome Chromosome
}

// Karyo returns the id of the chromosome the endpoint lies on.
func (e Endpoint) Karyo() string { return e.Feature.Karyo }

// Endpoints resolves the source and target of l to their features and
// chromosomes.
func (d Data) Endpoints(l Link) (Endpoint, Endpoint, error) {
	src, err := d.endpoint(l.Source)
	if err != nil {
		return Endpoint{}, Endpoint{}, err
	}
	dst, err := d.endpoint(l.Target)
	if err != nil {
		return Endpoint{}, Endpoint{}, err
	}
	return src, dst, nil
}

func (d Data) endpoint(featureID string) (Endpoint, error) {
	f, ok := d.Features[featureID]
	if !ok {
		return Endpoint{}, errors.New(errors.ErrCodeNotFound, "feature %q does not exist", featureID)
	}
	c, ok := d.Chromosomes[f.Karyo]
	if !ok {
		return Endpoint{}, errors.New(errors.ErrCodeNotFound, "chromosome %q of feature %q does not exist", f.Karyo, featureID)
	}
	return Endpoint{FeatureID: featureID, Feature: f, Chromosome: c}, nil
}

// Chromosome looks up a chromosome by id.
func (d Data) Chromosome(id string) (Chromosome, error) {
	c, ok := d.Chromosomes[id]
	if !ok {
		return Chromosome{}, errors.New(errors.ErrCodeNotFound, "chromosome %q does not exist", id)
	}
	return c, nil
}

// Validate checks that every chromosome has a positive length and that all
// feature and link references resolve. Ids are checked in sorted order so the
// first reported problem is stable.
func (d Data) Validate() error {
	for _, id := range d.ChromosomeIDs() {
		if c := d.Chromosomes[id]; c.Length <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "chromosome %q: length must be > 0, got %v", id, c.Length)
		}
	}
	for _, id := range d.FeatureIDs() {
		f := d.Features[id]
		if _, ok := d.Chromosomes[f.Karyo]; !ok {
			return errors.New(errors.ErrCodeNotFound, "feature %q: chromosome %q does not exist", id, f.Karyo)
		}
	}
	for _, id := range d.LinkIDs() {
		if _, _, err := d.Endpoints(d.Links[id]); err != nil {
			return errors.Wrap(errors.ErrCodeNotFound, err, "link %q", id)
		}
	}
	return nil
}

// ChromosomeIDs returns all chromosome ids in ascending order.
func (d Data) ChromosomeIDs() []string { return slices.Sorted(maps.Keys(d.Chromosomes)) }

// FeatureIDs returns all feature ids in ascending order.
func (d Data) FeatureIDs() []string { return slices.Sorted(maps.Keys(d.Features)) }

// LinkIDs returns all link ids in ascending order.
func (d Data) LinkIDs() []string { return slices.Sorted(maps.Keys(d.Links)) }

// GenomeIDs returns the distinct genome ids owning at least one chromosome,
// in ascending order.
func (d Data) GenomeIDs() []int {
	seen := make(map[int]bool)
	for _, c := range d.Chromosomes {
		seen[c.GenomeID] = true
	}
	return slices.Sorted(maps.Keys(seen))
}
