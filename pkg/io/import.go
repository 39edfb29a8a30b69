package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/filter"
	"github.com/matzehuels/synteny/pkg/genome"
)

type document struct {
	Karyo struct {
		Chromosomes map[string]genome.Chromosome `json:"chromosomes"`
	} `json:"karyo"`
	Features map[string]genome.Feature `json:"features"`
	Links    map[string]genome.Link    `json:"links"`
	Tree     *genome.TreeNode          `json:"tree,omitempty"`
}

// ReadData decodes alignment data from r and validates its references.
// ReadData does not close r.
func ReadData(r io.Reader) (genome.Data, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return genome.Data{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}

	data := genome.Data{
		Chromosomes: doc.Karyo.Chromosomes,
		Features:    doc.Features,
		Links:       doc.Links,
		Tree:        doc.Tree,
	}
	if data.Chromosomes == nil {
		data.Chromosomes = map[string]genome.Chromosome{}
	}
	if data.Features == nil {
		data.Features = map[string]genome.Feature{}
	}
	if data.Links == nil {
		data.Links = map[string]genome.Link{}
	}
	if err := data.Validate(); err != nil {
		return genome.Data{}, err
	}
	return data, nil
}

// ImportData reads alignment data from the JSON file at path.
func ImportData(path string) (genome.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return genome.Data{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadData(f)
}

// ReadFilters decodes display filters from r.
func ReadFilters(r io.Reader) (filter.Filters, error) {
	var f filter.Filters
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return filter.Filters{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	if f.Karyo.Chromosomes == nil {
		f.Karyo.Chromosomes = map[string]filter.ChromosomeFilter{}
	}
	if err := f.Validate(); err != nil {
		return filter.Filters{}, err
	}
	return f, nil
}

// ImportFilters reads display filters from the JSON file at path.
func ImportFilters(path string) (filter.Filters, error) {
	f, err := os.Open(path)
	if err != nil {
		return filter.Filters{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFilters(f)
}
