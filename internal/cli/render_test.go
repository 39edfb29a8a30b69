package cli

import (
	"testing"

	"github.com/matzehuels/synteny/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
		{"empty entries dropped", "png,,pdf,", []string{"png", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name          string
		output, input string
		want          string
	}{
		{"derived from input", "", "data/grape.json", "data/grape"},
		{"format extension stripped", "out/grape.svg", "grape.json", "out/grape"},
		{"unknown extension kept", "out/grape.v2", "grape.json", "out/grape.v2"},
		{"no extension", "out/grape", "grape.json", "out/grape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestNeedsConverter(t *testing.T) {
	tests := []struct {
		formats []string
		want    bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "json"}, false},
		{[]string{"svg", "png"}, true},
		{[]string{"pdf"}, true},
	}

	for _, tt := range tests {
		if got := needsConverter(tt.formats); got != tt.want {
			t.Errorf("needsConverter(%v) = %v, want %v", tt.formats, got, tt.want)
		}
	}
}

func TestValidFormatsMap(t *testing.T) {
	for _, f := range []string{"svg", "pdf", "png", "json"} {
		if !pipeline.ValidFormats[f] {
			t.Errorf("ValidFormats[%q] = false, want true", f)
		}
	}
	if pipeline.ValidFormats["invalid"] {
		t.Error("ValidFormats[invalid] should be false")
	}
}
