// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhavikaa10/Student-Dashboard/internal/export"
	"github.com/bhavikaa10/Student-Dashboard/internal/pdftext"
	"github.com/bhavikaa10/Student-Dashboard/internal/pipeline"
	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// Export filenames, matching the download names of the original dashboard.
const (
	icsFileName    = "course_calendar.ics"
	reportFileName = "course_calendar.pdf"
	yamlFileName   = "events.yaml"
	jsonFileName   = "events.json"
)

var generateCmd = &cobra.Command{
	Use:   "generate [syllabus.pdf]",
	Short: "Run the full pipeline and write the export files",
	Long: `Generate extracts deadline events from the syllabus, prints the event
table, and writes the selected export formats to the output directory:
an iCalendar file (ics), a PDF report (pdf), and the tabular view as
YAML or JSON (yaml, json).`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading syllabus %s: %w", args[0], err)
	}

	cfg := pipelineConfig(cmd)
	res, err := pipeline.Run(doc, window, pdftext.PDFExtractor{}, cfg, resultCache)
	if err != nil {
		return err
	}

	if res.Table.IsEmpty() {
		fmt.Fprintln(os.Stderr, "warning: no valid deadlines or week references found in this date range")
		return nil
	}

	export.FormatTable(os.Stdout, res.Table)

	outDir := cfg.Export.OutputDir
	if cmd.Flags().Changed("out-dir") {
		outDir, _ = cmd.Flags().GetString("out-dir")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	formats, _ := cmd.Flags().GetStringSlice("format")
	for _, format := range formats {
		path, err := writeExport(format, outDir, res)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}

// writeExport writes one export format from the already-computed result
// and returns the file path.
func writeExport(format, outDir string, res *pipeline.Result) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "ics":
		path := filepath.Join(outDir, icsFileName)
		return path, os.WriteFile(path, res.ICS, 0o644)
	case "pdf":
		path := filepath.Join(outDir, reportFileName)
		return path, os.WriteFile(path, res.Report, 0o644)
	case "yaml":
		path := filepath.Join(outDir, yamlFileName)
		return path, export.WriteYAML(path, res.Table)
	case "json":
		path := filepath.Join(outDir, jsonFileName)
		return path, export.WriteJSON(path, res.Table)
	default:
		return "", fmt.Errorf("unsupported format %q: use ics, pdf, yaml, or json", format)
	}
}

func init() {
	extractionFlags(generateCmd)
	generateCmd.Flags().String("out-dir", types.DefaultOutputDir, "directory export files are written to")
	generateCmd.Flags().StringSlice("format", []string{"ics", "pdf"}, "export formats: ics, pdf, yaml, json")

	rootCmd.AddCommand(generateCmd)
}
