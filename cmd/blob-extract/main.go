// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blob-extract CLI.
// It gathers the database, table, and column choices (from flags, config,
// environment, or interactive prompts) and hands them to the extraction
// pipeline in internal/extract.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blob-extract/internal/database"
	"github.com/pdiddy/blob-extract/internal/schema"
	"github.com/pdiddy/blob-extract/internal/secrets"
	"github.com/pdiddy/blob-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds DSNs loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the blob-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "blob-extract",
	Short: "Extract BLOB columns from a database table into typed files",
	Long: `blob-extract reads every BLOB stored in one column of a database table,
detects each blob's content type from its bytes, and writes it to
<output-dir>/<category>/<id>.<ext> with a manifest (extracted_files.csv)
listing every file written.

Use tables and columns to inspect a database, then extract to run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: blob-extract.yaml in . or ~/.config/blob-extract/)")
	rootCmd.PersistentFlags().String("driver", string(types.DriverSQLite), "database driver: sqlite3, mysql, or postgres")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file, or DSN for mysql/postgres")
	rootCmd.PersistentFlags().Bool("read-only", true, "open SQLite files read-only")
	rootCmd.PersistentFlags().Bool("verbose", false, "log debug detail to stderr")

	viper.BindPFlag("database.driver", rootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("database.dsn", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("database.read_only", rootCmd.PersistentFlags().Lookup("read-only"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blob-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blob-extract"))
		}
	}

	// BLOB_EXTRACT_DATABASE_DSN, BLOB_EXTRACT_OUTPUT_DIR, ...
	viper.SetEnvPrefix("BLOB_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// databaseConfig resolves connection settings; .secrets/<driver>-dsn
// fills in a missing DSN.
func databaseConfig() types.DatabaseConfig {
	cfg := types.DatabaseConfig{
		Driver:   types.Driver(viper.GetString("database.driver")).Canonical(),
		DSN:      viper.GetString("database.dsn"),
		ReadOnly: viper.GetBool("database.read_only"),
	}
	if cfg.Driver == "" {
		cfg.Driver = types.DriverSQLite
	}
	if cfg.DSN == "" {
		if dsn, ok := loadedSecrets.DSN(cfg.Driver); ok {
			cfg.DSN = dsn
		}
	}
	return cfg
}

// openInspector opens the source database. The caller closes db.
func openInspector(ctx context.Context, cfg types.DatabaseConfig) (*sql.DB, *schema.Inspector, error) {
	db, dialect, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, schema.NewInspector(db, dialect), nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
