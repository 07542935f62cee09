// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blob-extract/pkg/types"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func sourceDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE attachments (id INTEGER PRIMARY KEY, name TEXT, content BLOB)`,
		`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO attachments (id, name, content) VALUES (1, 'logo', ?), (2, 'empty', NULL), (3, 'notes', ?)`,
		pngHeader, []byte("meeting notes\n"))
	require.NoError(t, err)
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExtractCommandJSON(t *testing.T) {
	dbPath := sourceDB(t)
	out := filepath.Join(t.TempDir(), "out")

	stdout, _, err := run(t, "", "extract",
		"--db", dbPath,
		"--table", "attachments", "--blob-column", "content", "--id-column", "name",
		"--output-dir", out, "--format", "json")
	require.NoError(t, err)

	var res types.ExtractResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, types.OutcomeCompleted, res.Outcome)
	assert.Equal(t, 1, res.Summary[types.CategoryImages])
	assert.Equal(t, 1, res.Summary[types.CategoryDocuments])
	assert.Equal(t, 1, res.Skipped)

	_, err = os.Stat(filepath.Join(out, "images", "logo.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "documents", "notes.txt"))
	assert.NoError(t, err)
}

func TestExtractCommandInteractive(t *testing.T) {
	dbPath := sourceDB(t)
	out := filepath.Join(t.TempDir(), "out")

	// Table 1 (attachments); the only BLOB column is picked automatically;
	// an out-of-range answer is asked again before ID column 1 (id).
	stdout, _, err := run(t, "1\n9\n1\n", "extract",
		"--db", dbPath,
		"--table", "", "--blob-column", "", "--id-column", "",
		"--output-dir", out, "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Select a table:")
	assert.Contains(t, stdout, "Select BLOB column: content")
	assert.Contains(t, stdout, `invalid choice "9"`)
	assert.Contains(t, stdout, "Images      : 1")
	assert.Contains(t, stdout, "Unknown     : 0")

	_, err = os.Stat(filepath.Join(out, "images", "1.png"))
	assert.NoError(t, err)
}

func TestExtractCommandNoBlobColumn(t *testing.T) {
	dbPath := sourceDB(t)
	out := filepath.Join(t.TempDir(), "out")

	stdout, _, err := run(t, "", "extract",
		"--db", dbPath,
		"--table", "people", "--blob-column", "", "--id-column", "id",
		"--output-dir", out, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No BLOB column found in people.")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestColumnsCommand(t *testing.T) {
	stdout, _, err := run(t, "", "columns", "--db", sourceDB(t), "attachments")
	require.NoError(t, err)
	assert.Regexp(t, `content\s+BLOB\s+yes`, stdout)
	assert.NotRegexp(t, `name\s+TEXT\s+yes`, stdout)
}

func TestTablesCommand(t *testing.T) {
	stdout, _, err := run(t, "", "tables", "--db", sourceDB(t))
	require.NoError(t, err)
	assert.Equal(t, "attachments\npeople\n", stdout)
}

func TestWriteResultText(t *testing.T) {
	res := &types.ExtractResult{Summary: types.NewRunSummary(), Skipped: 2, ManifestPath: "out/extracted_files.csv"}
	res.Summary[types.CategoryAudio] = 3

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, res, "text"))

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines, "Images      : 0")
	assert.Contains(t, lines, "Audio       : 3")
	assert.Contains(t, lines, "Executables : 0")
	assert.Contains(t, buf.String(), "written: 3, skipped: 2, failed: 0")
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"text", "yaml", "json"} {
		assert.NoError(t, checkFormat(f))
	}
	assert.Error(t, checkFormat("xml"))
}
