package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fontroute/pkg/catalog"
)

// WriteJSON encodes a catalog as a JSON fallback document and writes it to w.
// The output can be re-imported with [ReadJSON] and [Build].
func WriteJSON(cat *catalog.Catalog, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromCatalog(cat)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a catalog as a TOML fallback document and writes it to w.
func WriteTOML(cat *catalog.Catalog, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(FromCatalog(cat)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes a catalog to path, choosing the format by extension.
func ExportFile(cat *catalog.Catalog, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTOML {
		return WriteTOML(cat, f)
	}
	return WriteJSON(cat, f)
}

// ExportJSON writes a catalog to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(cat *catalog.Catalog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(cat, f)
}
