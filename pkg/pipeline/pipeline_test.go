package pipeline

import (
	"testing"

	"github.com/matzehuels/synteny/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		layout  string
		wantErr bool
	}{
		{"linear", false},
		{"circular", false},
		{"spiral", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateLayout(tt.layout)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLayout(%q) error = %v, wantErr %v", tt.layout, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidLayout) {
			t.Errorf("ValidateLayout(%q) code = %v", tt.layout, errors.GetCode(err))
		}
	}
}

func TestParseSet(t *testing.T) {
	tests := []struct {
		in        string
		key, want string
		wantErr   bool
	}{
		{"layout=circular", "layout", "circular", false},
		{" width =1200", "width", "1200", false},
		{"color=#ff0000", "color", "#ff0000", false},
		{"labels.showAllLabels=", "labels.showAllLabels", "", false},
		{"a=b=c", "a", "b=c", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, err := ParseSet(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSet(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if key != tt.key || value != tt.want {
				t.Errorf("ParseSet(%q) = (%q, %q), want (%q, %q)", tt.in, key, value, tt.key, tt.want)
			}
		})
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing data", Options{}, errors.ErrCodeEmptyValue},
		{"bad override", Options{DataPath: "d.json", Sets: []string{"width"}}, errors.ErrCodeInvalidInput},
		{"bad layout", Options{DataPath: "d.json", Layout: "spiral"}, errors.ErrCodeInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLoad()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateForLoad() = %v, want code %v", err, tt.code)
			}
		})
	}

	opts := Options{DataPath: "d.json", Layout: "circular"}
	if err := opts.ValidateForLoad(); err != nil {
		t.Fatalf("ValidateForLoad() = %v", err)
	}
	if opts.Logger == nil {
		t.Error("logger default not set")
	}
}

func TestOptionsRenderDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("ValidateForRender() = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}

	bad := Options{Scale: -1}
	if err := bad.ValidateForRender(); !errors.Is(err, errors.ErrCodeTooSmall) {
		t.Errorf("negative scale: %v", err)
	}
}
