// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the syllabus-calendar CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bhavikaa10/Student-Dashboard/internal/pipeline"
	"github.com/bhavikaa10/Student-Dashboard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// resultCache memoizes pipeline runs for the process lifetime. It is
// created here and handed to the pipeline as a dependency.
var resultCache = pipeline.NewCache()

// rootCmd is the base command for the syllabus-calendar CLI.
var rootCmd = &cobra.Command{
	Use:   "syllabus-calendar",
	Short: "Extract course deadlines from a syllabus PDF into a calendar",
	Long: `syllabus-calendar scans a syllabus PDF for deadline dates, both
absolute dates like "10/15/2024" or "October 15, 2024" and week references
like "Week 3" or "2nd week", resolves them against the semester window, and
renders the result as a table with export to .ics and PDF.

Each stage is a subcommand: text dumps the extracted PDF text, extract
prints the event table, and generate writes the export files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./syllabus-calendar.yaml or ~/.config/syllabus-calendar/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("syllabus-calendar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "syllabus-calendar"))
		}
	}

	viper.SetEnvPrefix("SYLLABUS_CALENDAR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// windowFromFlags parses and validates the --start/--end pair. Equal or
// inverted bounds are rejected here, before the pipeline runs.
func windowFromFlags(cmd *cobra.Command) (types.SemesterWindow, error) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	if startStr == "" || endStr == "" {
		return types.SemesterWindow{}, fmt.Errorf("--start and --end are required (format %s)", types.ISODate)
	}

	start, err := time.Parse(types.ISODate, startStr)
	if err != nil {
		return types.SemesterWindow{}, fmt.Errorf("invalid --start %q: %w", startStr, err)
	}
	end, err := time.Parse(types.ISODate, endStr)
	if err != nil {
		return types.SemesterWindow{}, fmt.Errorf("invalid --end %q: %w", endStr, err)
	}

	return types.NewSemesterWindow(start, end)
}

// pipelineConfig assembles the stage configuration from flags, falling
// back to the viper config file for flags the user did not set.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	var cfg types.PipelineConfig

	cfg.Title.Window, _ = cmd.Flags().GetInt("window")
	if !cmd.Flags().Changed("window") {
		if v := viper.GetInt("title.window"); v > 0 {
			cfg.Title.Window = v
		}
	}

	cfg.Title.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
	if !cmd.Flags().Changed("keywords") {
		if kws := viper.GetStringSlice("title.keywords"); len(kws) > 0 {
			cfg.Title.Keywords = kws
		}
	}

	cfg.Export.ReportHeading = viper.GetString("export.report_heading")
	if cfg.Export.ReportHeading == "" {
		cfg.Export.ReportHeading = types.DefaultReportHeading
	}

	cfg.Export.OutputDir = viper.GetString("export.output_dir")
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = types.DefaultOutputDir
	}

	return cfg
}

// extractionFlags registers the flags shared by the subcommands that
// run the pipeline.
func extractionFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "semester start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "semester end date (YYYY-MM-DD)")
	cmd.Flags().Int("window", types.DefaultTitleWindow, "context half-width for title inference, in characters")
	cmd.Flags().StringSlice("keywords", nil, "ordered deadline keywords for title inference")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
