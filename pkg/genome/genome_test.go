package genome

import (
	"slices"
	"testing"

	"github.com/matzehuels/synteny/pkg/errors"
)

func sampleData() Data {
	return Data{
		Chromosomes: map[string]Chromosome{
			"c1": {GenomeID: 0, Length: 2000},
			"c2": {GenomeID: 1, Length: 1000},
			"c3": {GenomeID: 1, Length: 500},
		},
		Features: map[string]Feature{
			"f1": {Karyo: "c1", Start: 300, End: 800},
			"f2": {Karyo: "c2", Start: 100, End: 600},
			"f3": {Karyo: "c3", Start: 400, End: 100, Group: "gen"},
		},
		Links: map[string]Link{
			"l1": {Source: "f1", Target: "f2", Identity: 90},
		},
	}
}

func TestFeatureLength(t *testing.T) {
	tests := []struct {
		name string
		f    Feature
		want float64
	}{
		{"forward", Feature{Start: 100, End: 600}, 500},
		{"backward", Feature{Start: 400, End: 100}, 300},
		{"empty", Feature{Start: 50, End: 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Length(); got != tt.want {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndpoints(t *testing.T) {
	d := sampleData()

	src, dst, err := d.Endpoints(d.Links["l1"])
	if err != nil {
		t.Fatalf("Endpoints() error = %v", err)
	}
	if src.FeatureID != "f1" || src.Karyo() != "c1" || src.Chromosome.Length != 2000 {
		t.Errorf("source = %+v", src)
	}
	if dst.FeatureID != "f2" || dst.Karyo() != "c2" || dst.Chromosome.GenomeID != 1 {
		t.Errorf("target = %+v", dst)
	}
}

func TestEndpointsMissing(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Data)
		link Link
	}{
		{
			name: "missing source feature",
			link: Link{Source: "nope", Target: "f2"},
		},
		{
			name: "missing target feature",
			link: Link{Source: "f1", Target: "nope"},
		},
		{
			name: "missing chromosome",
			mut:  func(d *Data) { d.Features["f9"] = Feature{Karyo: "gone"} },
			link: Link{Source: "f9", Target: "f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleData()
			if tt.mut != nil {
				tt.mut(&d)
			}
			_, _, err := d.Endpoints(tt.link)
			if !errors.Is(err, errors.ErrCodeNotFound) {
				t.Errorf("Endpoints() error = %v, want NOT_FOUND", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mut      func(*Data)
		wantCode errors.Code
	}{
		{name: "valid"},
		{
			name:     "zero length",
			mut:      func(d *Data) { d.Chromosomes["c3"] = Chromosome{GenomeID: 1} },
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "dangling feature",
			mut:      func(d *Data) { d.Features["f4"] = Feature{Karyo: "c9"} },
			wantCode: errors.ErrCodeNotFound,
		},
		{
			name:     "dangling link",
			mut:      func(d *Data) { d.Links["l2"] = Link{Source: "f1", Target: "f9"} },
			wantCode: errors.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleData()
			if tt.mut != nil {
				tt.mut(&d)
			}
			err := d.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestSortedIDs(t *testing.T) {
	d := sampleData()

	if got, want := d.ChromosomeIDs(), []string{"c1", "c2", "c3"}; !slices.Equal(got, want) {
		t.Errorf("ChromosomeIDs() = %v, want %v", got, want)
	}
	if got, want := d.FeatureIDs(), []string{"f1", "f2", "f3"}; !slices.Equal(got, want) {
		t.Errorf("FeatureIDs() = %v, want %v", got, want)
	}
	if got, want := d.LinkIDs(), []string{"l1"}; !slices.Equal(got, want) {
		t.Errorf("LinkIDs() = %v, want %v", got, want)
	}
	if got, want := d.GenomeIDs(), []int{0, 1}; !slices.Equal(got, want) {
		t.Errorf("GenomeIDs() = %v, want %v", got, want)
	}
}

func TestTreeNodeIsEmpty(t *testing.T) {
	var nilNode *TreeNode
	tests := []struct {
		name string
		node *TreeNode
		want bool
	}{
		{"nil", nilNode, true},
		{"zero", &TreeNode{}, true},
		{"named leaf", &TreeNode{Name: "g0"}, false},
		{"inner", &TreeNode{Children: []*TreeNode{{Name: "g0"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
