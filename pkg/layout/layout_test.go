package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/filter"
	"github.com/matzehuels/synteny/pkg/genome"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// pair is two genomes with one chromosome each, connected by one link.
func pair() Snapshot {
	return Snapshot{
		Data: genome.Data{
			Chromosomes: map[string]genome.Chromosome{
				"c1": {GenomeID: 0, Length: 2000},
				"c2": {GenomeID: 1, Length: 1000},
			},
			Features: map[string]genome.Feature{
				"f1": {Karyo: "c1", Start: 100, End: 600},
				"f2": {Karyo: "c2", Start: 100, End: 600},
			},
			Links: map[string]genome.Link{
				"l1": {Source: "f1", Target: "f2", Identity: 90},
			},
		},
		Filters: filter.Filters{
			Karyo: filter.Karyo{
				Order:       []string{"c1", "c2"},
				GenomeOrder: []int{0, 1},
				Chromosomes: map[string]filter.ChromosomeFilter{
					"c1": {Visible: true},
					"c2": {Visible: true},
				},
			},
			Links: filter.LinkBounds{
				MinLinkIdentity: 40,
				MaxLinkIdentity: 100,
				MinLinkLength:   100,
				MaxLinkLength:   5000,
			},
		},
		Config: config.Default(),
	}
}

func reverse(s Snapshot, id string) Snapshot {
	if err := s.Filters.ToggleReverse(id); err != nil {
		panic(err)
	}
	return s
}

func TestGenomeDistance(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name   string
		height float64
		rows   int
		want   float64
	}{
		{"no rows", 1000, 0, 0},
		{"single row", 1000, 1, 0},
		{"two rows", 1000, 2, 970},
		{"three rows", 1000, 3, 485},
		{"rounds half up", 1001, 3, 486},
		{"rounds down", 1000, 4, 323},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Graphical.Height = tt.height
			if got := GenomeDistance(cfg, tt.rows); got != tt.want {
				t.Errorf("GenomeDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOuterRadius(t *testing.T) {
	cfg := config.Default()
	cfg.Graphical.Width = 800
	if got := OuterRadius(cfg); !approx(got, 360) {
		t.Errorf("OuterRadius() = %v, want 360", got)
	}
}

func TestLinksOfKaryo(t *testing.T) {
	s := pair()
	s.Data.Chromosomes["c3"] = genome.Chromosome{GenomeID: 1, Length: 10}

	got, err := LinksOfKaryo(s.Data, "c2")
	if err != nil {
		t.Fatalf("LinksOfKaryo: %v", err)
	}
	if len(got) != 1 || got[0] != "l1" {
		t.Errorf("LinksOfKaryo(c2) = %v, want [l1]", got)
	}

	got, err = LinksOfKaryo(s.Data, "c3")
	if err != nil {
		t.Fatalf("LinksOfKaryo: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LinksOfKaryo(c3) = %v, want none", got)
	}

	if _, err := LinksOfKaryo(s.Data, "missing"); err == nil {
		t.Error("expected error for unknown chromosome")
	}
}
