// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest writes the CSV log of extracted files.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/blob-extract/pkg/types"
)

// FileName is the manifest's name inside the output root.
const FileName = "extracted_files.csv"

// Header is the fixed first row of every manifest.
var Header = []string{"ID", "MIME Type", "Extension", "Saved Path"}

// Writer appends ManifestEntry rows to a CSV file in call order.
type Writer struct {
	f      *os.File
	csv    *csv.Writer
	count  int
	closed bool
}

// Open creates (or truncates) the manifest at path and writes the header.
func Open(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating manifest: %w", err)
	}

	w := &Writer{f: f, csv: csv.NewWriter(f)}
	if err := w.csv.Write(Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing manifest header: %w", err)
	}
	return w, nil
}

// Record appends one entry.
func (w *Writer) Record(e types.ManifestEntry) error {
	if w.closed {
		return errors.New("manifest is closed")
	}
	if err := w.csv.Write([]string{e.ID, e.MIMELabel, e.Extension, e.SavedPath}); err != nil {
		return fmt.Errorf("writing manifest row %s: %w", e.ID, err)
	}
	w.count++
	return nil
}

// Count returns the number of entries recorded.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered rows and releases the file. Calling Close more
// than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.f.Close()
	if flushErr != nil {
		return fmt.Errorf("flushing manifest: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing manifest: %w", closeErr)
	}
	return nil
}

// Read parses a manifest written by Writer.
func Read(path string) ([]types.ManifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading manifest header: %w", err)
	}
	for i := range Header {
		if header[i] != Header[i] {
			return nil, fmt.Errorf("unexpected manifest header %q", header)
		}
	}

	var entries []types.ManifestEntry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading manifest row: %w", err)
		}
		entries = append(entries, types.ManifestEntry{
			ID:        rec[0],
			MIMELabel: rec[1],
			Extension: rec[2],
			SavedPath: rec[3],
		})
	}
	return entries, nil
}
