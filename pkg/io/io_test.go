package io

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/filter"
)

const sample = `{
  "karyo": {
    "chromosomes": {
      "c2": {"genome_id": 1, "length": 1000, "seq": null},
      "c1": {"genome_id": 0, "length": 2000, "seq": null}
    }
  },
  "features": {
    "f1": {"karyo": "c1", "start": 100, "end": 600},
    "f2": {"karyo": "c2", "start": 600, "end": 100}
  },
  "links": {
    "l1": {"source": "f1", "target": "f2", "identity": 90}
  },
  "tree": {"children": [{"name": "0"}, {"name": "1"}]}
}`

func TestReadData(t *testing.T) {
	data, err := ReadData(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadData: %v", err)
	}
	if c := data.Chromosomes["c1"]; c.GenomeID != 0 || c.Length != 2000 {
		t.Errorf("c1 = %+v", c)
	}
	if f := data.Features["f2"]; f.Karyo != "c2" || f.Start != 600 || f.End != 100 {
		t.Errorf("f2 = %+v", f)
	}
	if l := data.Links["l1"]; l.Source != "f1" || l.Target != "f2" || l.Identity != 90 {
		t.Errorf("l1 = %+v", l)
	}
	if data.Tree.IsEmpty() || len(data.Tree.Children) != 2 {
		t.Errorf("tree = %+v", data.Tree)
	}
}

func TestReadDataEmpty(t *testing.T) {
	data, err := ReadData(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ReadData: %v", err)
	}
	if data.Chromosomes == nil || data.Features == nil || data.Links == nil {
		t.Error("maps should be allocated")
	}
	if !data.Tree.IsEmpty() {
		t.Error("tree should be empty")
	}
}

func TestReadDataErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"karyo":`, errors.ErrCodeInvalidInput},
		{"zero length", `{"karyo":{"chromosomes":{"c1":{"genome_id":0,"length":0}}}}`, errors.ErrCodeInvalidInput},
		{"dangling feature", `{"features":{"f1":{"karyo":"nope","start":0,"end":1}}}`, errors.ErrCodeNotFound},
		{"dangling link", `{"links":{"l1":{"source":"a","target":"b","identity":1}}}`, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadData(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestImportDataMissing(t *testing.T) {
	if _, err := ImportData(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultFilters(t *testing.T) {
	data, err := ReadData(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	f := DefaultFilters(data, config.Default())

	if !slices.Equal(f.Karyo.Order, []string{"c1", "c2"}) {
		t.Errorf("Order = %v", f.Karyo.Order)
	}
	if !slices.Equal(f.Karyo.GenomeOrder, []int{0, 1}) {
		t.Errorf("GenomeOrder = %v", f.Karyo.GenomeOrder)
	}
	for id, c := range f.Karyo.Chromosomes {
		if !c.Visible || c.Reverse {
			t.Errorf("%s = %+v, want visible and forward", id, c)
		}
	}
	want := filter.LinkBounds{MinLinkIdentity: 40, MaxLinkIdentity: 100, MinLinkLength: 100, MaxLinkLength: 5000}
	if f.Links != want {
		t.Errorf("Links = %+v, want %+v", f.Links, want)
	}
	if f.ShowAllChromosomes || f.OnlyShowAdjacentLinks {
		t.Error("flags should default to off")
	}
}

func TestFiltersFile(t *testing.T) {
	data, err := ReadData(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	f := DefaultFilters(data, config.Default())
	if err := f.ToggleReverse("c2"); err != nil {
		t.Fatal(err)
	}
	f.OnlyShowAdjacentLinks = true

	path := filepath.Join(t.TempDir(), "filters.json")
	if err := ExportFilters(f, path); err != nil {
		t.Fatalf("ExportFilters: %v", err)
	}
	got, err := ImportFilters(path)
	if err != nil {
		t.Fatalf("ImportFilters: %v", err)
	}
	if !got.Karyo.Chromosomes["c2"].Reverse || !got.OnlyShowAdjacentLinks {
		t.Errorf("ImportFilters() = %+v", got)
	}
}

func TestReadFilters(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"karyo":{"order":["c1"],"genome_order":[0]},"showAllChromosomes":true}`)
	f, err := ReadFilters(&buf)
	if err != nil {
		t.Fatalf("ReadFilters: %v", err)
	}
	if !f.ShowAllChromosomes || f.Karyo.Chromosomes == nil || f.Karyo.Order[0] != "c1" {
		t.Errorf("ReadFilters() = %+v", f)
	}
	if _, err := ReadFilters(strings.NewReader("[")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestReadFiltersDuplicates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"order", `{"karyo":{"order":["c1","c2","c1"],"genome_order":[0,1]}}`},
		{"genome order", `{"karyo":{"order":["c1","c2"],"genome_order":[0,1,0]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadFilters(strings.NewReader(tt.raw)); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadFilters() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
