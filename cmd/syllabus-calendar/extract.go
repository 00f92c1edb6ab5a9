// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhavikaa10/Student-Dashboard/internal/export"
	"github.com/bhavikaa10/Student-Dashboard/internal/pdftext"
	"github.com/bhavikaa10/Student-Dashboard/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract [syllabus.pdf]",
	Short: "Print the extracted event table without writing files",
	Long: `Extract runs the date extractors over the syllabus text, filters to
the semester window, and prints the resulting event table. Use --json
for machine-readable rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading syllabus %s: %w", args[0], err)
	}

	res, err := pipeline.Run(doc, window, pdftext.PDFExtractor{}, pipelineConfig(cmd), resultCache)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(export.Rows(res.Table))
	}

	if res.Table.IsEmpty() {
		fmt.Fprintln(os.Stderr, "warning: no valid deadlines or week references found in this date range")
		return nil
	}

	export.FormatTable(os.Stdout, res.Table)
	return nil
}

func init() {
	extractionFlags(extractCmd)
	extractCmd.Flags().Bool("json", false, "emit the table as JSON rows")

	rootCmd.AddCommand(extractCmd)
}
