// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blob-extract/pkg/types"
)

func checkFormat(format string) error {
	switch format {
	case "text", "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

// writeResult prints the run summary. Text lists every category in
// fixed order; yaml and json print the whole result.
func writeResult(w io.Writer, res *types.ExtractResult, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(w, "\nExtraction summary:")
	for _, c := range types.AllCategories() {
		fmt.Fprintf(w, "%-12s: %d\n", categoryTitle(c), res.Summary[c])
	}
	fmt.Fprintf(w, "\nwritten: %d, skipped: %d, failed: %d\n", res.Written(), res.Skipped, res.Failed)
	if res.ManifestPath != "" {
		fmt.Fprintf(w, "manifest: %s\n", res.ManifestPath)
	}
	return nil
}

func categoryTitle(c types.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
