// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the database",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "List a table's columns and mark the BLOB ones",
	Args:  cobra.ExactArgs(1),
	RunE:  runColumns,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(columnsCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, insp, err := openInspector(ctx, databaseConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := insp.ListTables(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(tables) == 0 {
		fmt.Fprintln(out, "No tables found in the database.")
		return nil
	}
	for _, t := range tables {
		fmt.Fprintln(out, t)
	}
	return nil
}

func runColumns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, insp, err := openInspector(ctx, databaseConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	cols, err := insp.ListColumns(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-30s  %-20s  %s\n", "Column", "Type", "BLOB")
	fmt.Fprintln(out, strings.Repeat("-", 58))
	blobs := 0
	for _, col := range cols {
		mark := ""
		if insp.Dialect().IsBlobType(col.DeclaredType) {
			mark = "yes"
			blobs++
		}
		fmt.Fprintf(out, "%-30s  %-20s  %s\n", col.Name, col.DeclaredType, mark)
	}
	if blobs == 0 {
		fmt.Fprintf(out, "\nNo BLOB column found in %s.\n", args[0])
	}
	return nil
}
