// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Category is the coarse grouping that selects an output subdirectory.
type Category string

const (
	CategoryImages      Category = "images"
	CategoryVideos      Category = "videos"
	CategoryDocuments   Category = "documents"
	CategoryArchives    Category = "archives"
	CategoryAudio       Category = "audio"
	CategoryExecutables Category = "executables"
	CategoryCode        Category = "code"
	CategoryEbooks      Category = "ebooks"
	CategoryUnknown     Category = "unknown"
)

// FallbackExtension is used for blobs whose content type has no mapping.
const FallbackExtension = "bin"

// AllCategories returns the nine categories in presentation order.
func AllCategories() []Category {
	return []Category{
		CategoryImages,
		CategoryVideos,
		CategoryDocuments,
		CategoryArchives,
		CategoryAudio,
		CategoryExecutables,
		CategoryCode,
		CategoryEbooks,
		CategoryUnknown,
	}
}

// Valid reports whether c is one of the nine categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ColumnInfo describes one column of a table as reported by the catalog.
type ColumnInfo struct {
	// Name is the column name as declared.
	Name string `json:"name" yaml:"name"`

	// DeclaredType is the storage type as declared (e.g. "BLOB", "INTEGER").
	DeclaredType string `json:"declared_type" yaml:"declared_type"`
}

// BlobRow is one fetched row: the identifier value as stored and the blob payload.
// Data is nil when the column held SQL NULL.
type BlobRow struct {
	ID   any
	Data []byte
}

// ClassificationResult is derived from a blob's bytes alone.
// Extension is empty only when MIMELabel has no mapping entry.
type ClassificationResult struct {
	MIMELabel string   `json:"mime_label" yaml:"mime_label"`
	Extension string   `json:"extension" yaml:"extension"`
	Category  Category `json:"category" yaml:"category"`
}

// HasExtension reports whether the label resolved to a known extension.
func (r ClassificationResult) HasExtension() bool {
	return r.Extension != ""
}

// ManifestEntry records one file written during a run.
type ManifestEntry struct {
	ID        string `json:"id" yaml:"id"`
	MIMELabel string `json:"mime_label" yaml:"mime_label"`
	Extension string `json:"extension" yaml:"extension"`
	SavedPath string `json:"saved_path" yaml:"saved_path"`
}

// RunSummary counts written files per category.
type RunSummary map[Category]int

// NewRunSummary returns a summary with every category set to zero.
func NewRunSummary() RunSummary {
	s := make(RunSummary, len(AllCategories()))
	for _, c := range AllCategories() {
		s[c] = 0
	}
	return s
}

// Total returns the number of files counted across all categories.
func (s RunSummary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// ExtractRequest names the table and columns to extract and where to write.
// Table and column names must come from schema introspection.
type ExtractRequest struct {
	Table      string `json:"table" yaml:"table"`
	IDColumn   string `json:"id_column" yaml:"id_column"`
	BlobColumn string `json:"blob_column" yaml:"blob_column"`
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
}

// Outcome describes how an extraction run ended when it did not fail.
type Outcome string

const (
	OutcomeCompleted    Outcome = "completed"
	OutcomeNoBlobColumn Outcome = "no_blob_column"
	OutcomeNoRows       Outcome = "no_rows"
)

// ExtractResult holds the outcome of one extraction run.
type ExtractResult struct {
	RunID        string          `json:"run_id" yaml:"run_id"`
	Outcome      Outcome         `json:"outcome" yaml:"outcome"`
	Summary      RunSummary      `json:"summary" yaml:"summary"`
	Entries      []ManifestEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
	Skipped      int             `json:"skipped" yaml:"skipped"`
	Failed       int             `json:"failed" yaml:"failed"`
	ManifestPath string          `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
	StartedAt    time.Time       `json:"started_at" yaml:"started_at"`
	Duration     time.Duration   `json:"duration" yaml:"duration"`
}

// Written returns the number of files written to disk.
func (r ExtractResult) Written() int {
	return r.Summary.Total()
}
