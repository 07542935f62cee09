// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads connection credentials kept out of config files.
// A secrets directory holds one file per value; the file name is the key.
// The CLI looks up "<driver>-dsn" (mysql-dsn, postgres-dsn) when no DSN
// was given on the command line, in the environment, or in config.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/blob-extract/pkg/types"
)

// Secrets maps key file names to their trimmed contents.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory
// yields empty Secrets. Unreadable files are reported on stderr and skipped.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Secrets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}

// DSN returns the stored data source name for driver, if any.
func (s Secrets) DSN(driver types.Driver) (string, bool) {
	v, ok := s[string(driver)+"-dsn"]
	return v, ok
}
