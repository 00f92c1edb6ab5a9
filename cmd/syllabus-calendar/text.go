package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhavikaa10/Student-Dashboard/internal/pdftext"
)

var textCmd = &cobra.Command{
	Use:   "text [syllabus.pdf]",
	Short: "Dump the plain text extracted from the syllabus PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading syllabus %s: %w", args[0], err)
		}

		text, err := pdftext.PDFExtractor{}.ExtractText(doc)
		if err != nil {
			return err
		}

		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}
