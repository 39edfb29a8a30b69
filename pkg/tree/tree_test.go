package tree

import (
	"strings"
	"testing"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/genome"
)

func sample() *genome.TreeNode {
	return &genome.TreeNode{Children: []*genome.TreeNode{
		{Name: "0"},
		{Children: []*genome.TreeNode{{Name: "1"}, {Name: "2"}}},
	}}
}

func TestHasTree(t *testing.T) {
	tests := []struct {
		name string
		tree *genome.TreeNode
		want bool
	}{
		{"nil", nil, false},
		{"empty", &genome.TreeNode{}, false},
		{"leaf", &genome.TreeNode{Name: "0"}, true},
		{"nested", sample(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasTree(genome.Data{Tree: tt.tree}); got != tt.want {
				t.Errorf("HasTree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParamsFor(t *testing.T) {
	cfg := config.Default()
	p, err := ParamsFor(cfg, 485)
	if err != nil {
		t.Fatalf("ParamsFor: %v", err)
	}
	want := Params{Width: 300, Height: 1455, Orientation: config.OrientationLeft, OffsetY: -227.5}
	if p != want {
		t.Errorf("ParamsFor() = %+v, want %+v", p, want)
	}

	cfg.Tree.Orientation = "up"
	if _, err := ParamsFor(cfg, 485); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestLeaves(t *testing.T) {
	got := strings.Join(Leaves(sample()), ",")
	if got != "0,1,2" {
		t.Errorf("Leaves() = %s, want 0,1,2", got)
	}
	if Leaves(nil) != nil {
		t.Error("Leaves(nil) should be empty")
	}
}

func TestToDOT(t *testing.T) {
	p := Params{Width: 288, Height: 720, Orientation: config.OrientationLeft}
	dot := ToDOT(sample(), p)

	for _, want := range []string{
		"digraph T {",
		"rankdir=LR;",
		`size="4.00,10.00!";`,
		`"n0" -> "n1";`,
		`"n0" -> "n2";`,
		`"n2" -> "n3";`,
		`"n2" -> "n4";`,
		`"n4" [shape=plaintext, label="2"];`,
		`{ rank=same; "n1"; "n3"; "n4"; }`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s\n%s", want, dot)
		}
	}

	p.Orientation = config.OrientationRight
	if dot := ToDOT(sample(), p); !strings.Contains(dot, "rankdir=RL;") {
		t.Error("right tree should use rankdir=RL")
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Params{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "rank=same") {
		t.Errorf("empty tree produced nodes:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.svg))); got != tt.want {
				t.Errorf("normalizeViewBox() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	svg := `<?xml version="1.0"?>` + "\n" + `<svg viewBox="0 0 80 60"><g/></svg>`
	got := string(Fit([]byte(svg), Params{Width: 300, Height: 1455}))
	want := `<svg viewBox="0 0 80.00 60.00" width="300.00" height="1455.00" preserveAspectRatio="none"><g/></svg>`
	if got != want {
		t.Errorf("Fit() = %s, want %s", got, want)
	}
}
