//go:build mage

package main

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const sampleDB = "sample.db"

// Sample writes sample.db: an attachments table with one blob per common
// category, a NULL blob, and a people table without any BLOB column.
//
//	mage sample && ./bin/blob-extract extract --db sample.db --table attachments --blob-column content --id-column name
func Sample() error {
	if err := os.Remove(sampleDB); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old %s: %w", sampleDB, err)
	}

	db, err := sql.Open("sqlite3", sampleDB)
	if err != nil {
		return fmt.Errorf("opening %s: %w", sampleDB, err)
	}
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE attachments (id INTEGER PRIMARY KEY, name TEXT NOT NULL, content BLOB)`,
		`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT, email TEXT)`,
		`INSERT INTO people (name, email) VALUES ('Ada', 'ada@example.com'), ('Linus', 'linus@example.com')`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("preparing %s: %w", sampleDB, err)
		}
	}

	blobs, err := sampleBlobs()
	if err != nil {
		return err
	}
	for _, b := range blobs {
		var content any
		if b.data != nil {
			content = b.data
		}
		if _, err := db.Exec(`INSERT INTO attachments (name, content) VALUES (?, ?)`, b.name, content); err != nil {
			return fmt.Errorf("inserting %s: %w", b.name, err)
		}
	}
	fmt.Printf("Wrote %s with %d attachments\n", sampleDB, len(blobs))
	return nil
}

type sampleBlob struct {
	name string
	data []byte
}

func sampleBlobs() ([]sampleBlob, error) {
	var zbuf bytes.Buffer
	zw := zip.NewWriter(&zbuf)
	f, err := zw.Create("readme.txt")
	if err != nil {
		return nil, err
	}
	if _, err := f.Write([]byte("zipped\n")); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	var gbuf bytes.Buffer
	gw := gzip.NewWriter(&gbuf)
	if _, err := gw.Write([]byte("compressed log line\n")); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}

	return []sampleBlob{
		{"logo", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}},
		{"invoice", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")},
		{"notes", []byte("Quarterly planning notes.\n")},
		{"bundle", zbuf.Bytes()},
		{"server-log", gbuf.Bytes()},
		{"noise", []byte{0x00, 0x9f, 0x13, 0x77, 0xfe, 0x01, 0x42, 0xc3}},
		{"missing", nil},
	}, nil
}
