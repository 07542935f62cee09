// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blob-extract/internal/extract"
	"github.com/pdiddy/blob-extract/internal/schema"
	"github.com/pdiddy/blob-extract/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Write every blob in a column to categorized files",
	Long: `Extract fetches the chosen BLOB column of a table, detects each blob's
content type from its bytes, and writes it to
<output-dir>/<category>/<id>.<ext>. NULL blobs are skipped. A manifest
(extracted_files.csv) in the output directory lists every file written.

Table, BLOB column, and ID column are prompted for when not given.
Existing files with the same name are overwritten.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("table", "", "table to extract from")
	extractCmd.Flags().String("blob-column", "", "BLOB column holding the file contents")
	extractCmd.Flags().String("id-column", "", "column whose value names each file")
	extractCmd.Flags().String("output-dir", "extracted", "output root (contains extracted_files.csv and category directories)")
	extractCmd.Flags().Bool("skip-write-errors", false, "log files that cannot be written and keep going instead of aborting")
	extractCmd.Flags().Bool("unique-ids", false, "fail before writing if the ID column repeats a value")
	extractCmd.Flags().String("format", "text", "summary format: text, yaml, or json")

	viper.BindPFlag("output_dir", extractCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("skip_write_errors", extractCmd.Flags().Lookup("skip-write-errors"))
	viper.BindPFlag("unique_ids", extractCmd.Flags().Lookup("unique-ids"))

	rootCmd.AddCommand(extractCmd)
}

func extractionConfig() types.ExtractionConfig {
	policy := types.AbortOnWriteError
	if viper.GetBool("skip_write_errors") {
		policy = types.ContinueOnWriteError
	}
	return types.ExtractionConfig{
		Database:    databaseConfig(),
		OutputDir:   viper.GetString("output_dir"),
		WritePolicy: policy,
		UniqueIDs:   viper.GetBool("unique_ids"),
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	cfg := extractionConfig()
	ask := newPrompter(cmd.InOrStdin(), out)

	if cfg.Database.DSN == "" && cfg.Database.Driver == types.DriverSQLite {
		path, err := ask.line("Enter path to SQLite .db file")
		if err != nil {
			return err
		}
		cfg.Database.DSN = path
	}

	db, insp, err := openInspector(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := insp.ListTables(ctx)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Fprintln(out, "No tables found in the database.")
		return nil
	}

	table, _ := cmd.Flags().GetString("table")
	if table == "" {
		if table, err = ask.choose("Select a table:", tables); err != nil {
			return err
		}
	}

	cols, err := insp.ListColumns(ctx, table)
	if err != nil {
		return err
	}
	blobs := insp.FindBlobColumns(cols)
	if len(blobs) == 0 {
		fmt.Fprintf(out, "No BLOB column found in %s.\n", table)
		return nil
	}

	blobCol, _ := cmd.Flags().GetString("blob-column")
	if blobCol == "" {
		if blobCol, err = ask.choose("Select BLOB column:", blobs); err != nil {
			return err
		}
	}
	idCol, _ := cmd.Flags().GetString("id-column")
	if idCol == "" {
		if idCol, err = ask.choose("Select ID column:", schema.ColumnNames(cols)); err != nil {
			return err
		}
	}

	// Keep stdout clean for machine-readable summaries.
	var progress io.Writer = out
	if format != "text" {
		progress = cmd.ErrOrStderr()
	}

	ex := extract.New(db, insp,
		extract.WithLogger(newLogger()),
		extract.WithProgress(progress),
		extract.WithWritePolicy(cfg.WritePolicy),
		extract.WithUniqueIDs(cfg.UniqueIDs),
	)

	res, err := ex.Extract(ctx, types.ExtractRequest{
		Table:      table,
		IDColumn:   idCol,
		BlobColumn: blobCol,
		OutputDir:  cfg.OutputDir,
	})
	if err != nil {
		if res != nil && res.Written() > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d file(s) written before the failure remain in %s\n", res.Written(), cfg.OutputDir)
		}
		return err
	}

	switch res.Outcome {
	case types.OutcomeNoBlobColumn:
		fmt.Fprintf(out, "No BLOB column found in %s.\n", table)
		return nil
	case types.OutcomeNoRows:
		fmt.Fprintf(cmd.ErrOrStderr(), "No rows found in %s.\n", table)
	}

	if err := writeResult(out, res, format); err != nil {
		return err
	}
	if res.Failed > 0 {
		return fmt.Errorf("%d blob(s) could not be written", res.Failed)
	}
	return nil
}
