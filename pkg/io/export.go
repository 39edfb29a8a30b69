package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/synteny/pkg/filter"
)

// WriteFilters encodes f as indented JSON. The output can be read back
// with [ReadFilters].
func WriteFilters(f filter.Filters, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFilters writes f to a JSON file at path.
func ExportFilters(f filter.Filters, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WriteFilters(f, out)
}
