package color

import (
	"testing"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.MinLinkIdentityColor = "#000000"
	cfg.MidLinkIdentityColor = "#c80000"
	cfg.MaxLinkIdentityColor = "#c800c8"
	return cfg
}

func TestIdentity(t *testing.T) {
	s, err := Identity(testConfig())
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}

	tests := []struct {
		name     string
		identity float64
		want     string
	}{
		{"below domain", -5, "#000000"},
		{"zero", 0, "#000000"},
		{"flat below min", 20, "#000000"},
		{"at min", 40, "#000000"},
		{"quarter to mid", 45, "#320000"},
		{"halfway to mid", 50, "#640000"},
		{"at mid", 60, "#c80000"},
		{"halfway to max", 80, "#c80064"},
		{"at max", 100, "#c800c8"},
		{"above domain", 120, "#c800c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Hex(tt.identity); got != tt.want {
				t.Errorf("Hex(%v) = %s, want %s", tt.identity, got, tt.want)
			}
		})
	}
}

func TestIdentityFlatAboveMax(t *testing.T) {
	cfg := testConfig()
	cfg.MaxLinkIdentity = 80
	s, err := Identity(cfg)
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if got := s.Hex(90); got != "#c800c8" {
		t.Errorf("Hex(90) = %s, want flat max color", got)
	}
}

func TestIdentityDefaultColors(t *testing.T) {
	s, err := Identity(config.Default())
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if got := s.Hex(40); got != "#d21414" {
		t.Errorf("Hex(min) = %s, want #d21414", got)
	}
	if got := s.Hex(30); got != "#d21414" {
		t.Errorf("Hex(below min) = %s, want #d21414", got)
	}
	if got := s.Hex(60); got != "#ffee05" {
		t.Errorf("Hex(mid) = %s, want #ffee05", got)
	}
	if got := s.Hex(100); got != "#1dad0a" {
		t.Errorf("Hex(max) = %s, want #1dad0a", got)
	}
}

func TestGenome(t *testing.T) {
	cfg := config.Default()
	cfg.Linear.StartLineColor = "#000000"
	cfg.Linear.EndLineColor = "#c80000"

	s, err := Genome(cfg, 3)
	if err != nil {
		t.Fatalf("Genome() error = %v", err)
	}
	for i, want := range []string{"#000000", "#640000", "#c80000"} {
		if got := s.Hex(float64(i)); got != want {
			t.Errorf("Hex(%d) = %s, want %s", i, got, want)
		}
	}

	single, err := Genome(cfg, 1)
	if err != nil {
		t.Fatalf("Genome(1) error = %v", err)
	}
	if got := single.Hex(0); got != "#000000" {
		t.Errorf("single genome Hex(0) = %s, want start color", got)
	}
}

func TestNewScaleErrors(t *testing.T) {
	tests := []struct {
		name     string
		domain   []float64
		colors   []string
		wantCode errors.Code
	}{
		{"length mismatch", []float64{0, 1}, []string{"#000000"}, errors.ErrCodeInvalidInput},
		{"empty", nil, nil, errors.ErrCodeInvalidInput},
		{"descending", []float64{1, 0}, []string{"#000000", "#ffffff"}, errors.ErrCodeInvalidInput},
		{"empty color", []float64{0, 1}, []string{"#000000", ""}, errors.ErrCodeEmptyValue},
		{"bad color", []float64{0, 1}, []string{"#000000", "white"}, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScale(tt.domain, tt.colors); !errors.Is(err, tt.wantCode) {
				t.Errorf("NewScale() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestDuplicateStops(t *testing.T) {
	s, err := NewScale([]float64{0, 50, 50, 100}, []string{"#000000", "#0000c8", "#c80000", "#c80000"})
	if err != nil {
		t.Fatalf("NewScale() error = %v", err)
	}
	// the color at a duplicated stop comes from the segment to its right
	if got := s.Hex(50); got != "#c80000" {
		t.Errorf("Hex(50) = %s, want #c80000", got)
	}
	if got := s.Hex(25); got != "#000064" {
		t.Errorf("Hex(25) = %s, want #000064", got)
	}
}
