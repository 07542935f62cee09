// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls every blob out of one table column, classifies
// it by content, and writes it under a per-category directory of the
// output root alongside a CSV manifest.
package extract

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/blob-extract/internal/classify"
	"github.com/pdiddy/blob-extract/internal/manifest"
	"github.com/pdiddy/blob-extract/internal/schema"
	"github.com/pdiddy/blob-extract/pkg/types"
)

// Classifier maps blob bytes to a classification.
type Classifier interface {
	Classify(data []byte) types.ClassificationResult
}

// Extractor runs extractions against one database.
type Extractor struct {
	db         *sql.DB
	inspector  *schema.Inspector
	classifier Classifier
	logger     *slog.Logger
	progress   io.Writer
	policy     types.WritePolicy
	uniqueIDs  bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClassifier replaces the default signature classifier.
func WithClassifier(c Classifier) Option {
	return func(e *Extractor) { e.classifier = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// WithProgress sets the writer that receives one status line per row.
func WithProgress(w io.Writer) Option {
	return func(e *Extractor) { e.progress = w }
}

// WithWritePolicy selects abort or continue on per-file write failures.
func WithWritePolicy(p types.WritePolicy) Option {
	return func(e *Extractor) { e.policy = p }
}

// WithUniqueIDs rejects identifier columns that repeat a value.
func WithUniqueIDs(on bool) Option {
	return func(e *Extractor) { e.uniqueIDs = on }
}

// New returns an Extractor reading from db and validating names with insp.
func New(db *sql.DB, insp *schema.Inspector, opts ...Option) *Extractor {
	e := &Extractor{
		db:         db,
		inspector:  insp,
		classifier: classify.Default,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress:   io.Discard,
		policy:     types.AbortOnWriteError,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// plan is a request whose names were all confirmed by introspection.
type plan struct {
	table      string
	idColumn   string
	blobColumn string
}

// Extract runs one extraction. A table without BLOB columns ends with
// OutcomeNoBlobColumn before anything is created. On failure the
// returned result reflects the files written before the error; they
// are left in place.
func (e *Extractor) Extract(ctx context.Context, req types.ExtractRequest) (res *types.ExtractResult, err error) {
	res = &types.ExtractResult{
		RunID:     uuid.NewString(),
		Outcome:   types.OutcomeCompleted,
		Summary:   types.NewRunSummary(),
		StartedAt: time.Now(),
	}
	defer func() { res.Duration = time.Since(res.StartedAt) }()

	p, ok, err := e.validate(ctx, req)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Outcome = types.OutcomeNoBlobColumn
		return res, nil
	}

	if req.OutputDir == "" {
		return res, types.FilesystemError("output directory", fmt.Errorf("not set"))
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return res, types.FilesystemError("creating output directory", err)
	}

	rows, err := e.fetch(ctx, p)
	if err != nil {
		return res, err
	}
	if e.uniqueIDs {
		if err := checkUniqueIDs(p, rows); err != nil {
			return res, err
		}
	}
	if len(rows) == 0 {
		res.Outcome = types.OutcomeNoRows
	}

	res.ManifestPath = filepath.Join(req.OutputDir, manifest.FileName)
	mw, err := manifest.Open(res.ManifestPath)
	if err != nil {
		return res, types.FilesystemError("opening manifest", err)
	}
	defer func() {
		if cerr := mw.Close(); cerr != nil && err == nil {
			err = types.FilesystemError("closing manifest", cerr)
		}
	}()

	e.logger.Info("extracting",
		slog.String("run_id", res.RunID),
		slog.String("table", p.table),
		slog.String("blob_column", p.blobColumn),
		slog.Int("rows", len(rows)))

	created := make(map[types.Category]bool)
	for _, row := range rows {
		if err := e.emit(req.OutputDir, row, created, mw, res); err != nil {
			return res, err
		}
	}

	e.logger.Info("extraction finished",
		slog.String("run_id", res.RunID),
		slog.Int("written", res.Written()),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed))
	return res, nil
}

// validate confirms every name in req against the catalog. ok is false
// when the table has no BLOB column at all.
func (e *Extractor) validate(ctx context.Context, req types.ExtractRequest) (plan, bool, error) {
	tables, err := e.inspector.ListTables(ctx)
	if err != nil {
		return plan{}, false, err
	}
	if !slices.Contains(tables, req.Table) {
		return plan{}, false, types.SchemaError(fmt.Sprintf("table %q", req.Table), fmt.Errorf("not found"))
	}

	cols, err := e.inspector.ListColumns(ctx, req.Table)
	if err != nil {
		return plan{}, false, err
	}
	blobs := e.inspector.FindBlobColumns(cols)
	if len(blobs) == 0 {
		return plan{}, false, nil
	}
	if !slices.Contains(blobs, req.BlobColumn) {
		return plan{}, false, types.SchemaError(fmt.Sprintf("column %q", req.BlobColumn),
			fmt.Errorf("not a BLOB column of %s (have %s)", req.Table, strings.Join(blobs, ", ")))
	}
	if !slices.Contains(schema.ColumnNames(cols), req.IDColumn) {
		return plan{}, false, types.SchemaError(fmt.Sprintf("column %q", req.IDColumn),
			fmt.Errorf("not a column of %s", req.Table))
	}

	return plan{table: req.Table, idColumn: req.IDColumn, blobColumn: req.BlobColumn}, true, nil
}

// fetch materialises the whole result set.
func (e *Extractor) fetch(ctx context.Context, p plan) ([]types.BlobRow, error) {
	q := e.inspector.Dialect().QuoteIdent
	query := fmt.Sprintf("SELECT %s, %s FROM %s", q(p.idColumn), q(p.blobColumn), q(p.table))

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, types.QueryError(fmt.Sprintf("fetching %s.%s", p.table, p.blobColumn), err)
	}
	defer rows.Close()

	var out []types.BlobRow
	for rows.Next() {
		var row types.BlobRow
		if err := rows.Scan(&row.ID, &row.Data); err != nil {
			return nil, types.QueryError("scanning row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, types.QueryError(fmt.Sprintf("fetching %s.%s", p.table, p.blobColumn), err)
	}
	return out, nil
}

// emit writes one row and records it. It returns an error only when the
// run must stop.
func (e *Extractor) emit(root string, row types.BlobRow, created map[types.Category]bool, mw *manifest.Writer, res *types.ExtractResult) error {
	id := FormatID(row.ID)
	if row.Data == nil {
		res.Skipped++
		fmt.Fprintf(e.progress, "skipped   %s (null)\n", id)
		return nil
	}

	cls := e.classifier.Classify(row.Data)
	ext, category := cls.Extension, cls.Category
	if !cls.HasExtension() {
		ext, category = types.FallbackExtension, types.CategoryUnknown
	}
	e.logger.Debug("classified blob",
		slog.String("id", id),
		slog.String("mime", cls.MIMELabel),
		slog.String("category", string(category)))

	dir := filepath.Join(root, string(category))
	path := filepath.Join(dir, FileName(id, ext))

	if err := writeBlob(dir, path, row.Data, created[category]); err != nil {
		if e.policy != types.ContinueOnWriteError {
			return types.FilesystemError(fmt.Sprintf("writing %s", path), err)
		}
		res.Failed++
		fmt.Fprintf(e.progress, "failed    %s: %v\n", id, err)
		e.logger.Warn("write failed", slog.String("id", id), slog.String("path", path), slog.Any("error", err))
		return nil
	}
	created[category] = true

	entry := types.ManifestEntry{ID: id, MIMELabel: cls.MIMELabel, Extension: ext, SavedPath: path}
	if err := mw.Record(entry); err != nil {
		return types.FilesystemError("recording manifest entry", err)
	}
	res.Summary[category]++
	res.Entries = append(res.Entries, entry)
	fmt.Fprintf(e.progress, "extracted %s\n", filepath.Join(string(category), filepath.Base(path)))
	return nil
}

// writeBlob creates dir on first use and writes data to path, replacing
// any file left there by an earlier run.
func writeBlob(dir, path string, data []byte, dirReady bool) error {
	if !dirReady {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func checkUniqueIDs(p plan, rows []types.BlobRow) error {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Data == nil {
			continue
		}
		id := FormatID(row.ID)
		if seen[id] {
			return types.SchemaError(fmt.Sprintf("identifier column %q", p.idColumn),
				fmt.Errorf("%w %q", types.ErrDuplicateID, id))
		}
		seen[id] = true
	}
	return nil
}

// FormatID renders an identifier value the way it appears in file
// names and the manifest.
func FormatID(v any) string {
	switch id := v.(type) {
	case nil:
		return "null"
	case string:
		return id
	case []byte:
		return string(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(id)
	case time.Time:
		return id.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(id)
	}
}

var unsafeName = strings.NewReplacer("/", "_", `\`, "_", "\x00", "_")

// FileName returns "{id}.{ext}" with path separators in id replaced.
func FileName(id, ext string) string {
	return unsafeName.Replace(id) + "." + ext
}
