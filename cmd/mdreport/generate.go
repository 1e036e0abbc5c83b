// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fill the template and render it as a .docx document",
	Long: `Generate fills the active Markdown template from a JSON data dictionary
and writes the converted document in one pass. Placeholders with no
dictionary entry render as the "[To be filled]" sentinel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, _ := cmd.Flags().GetString("data")
		outPath, _ := cmd.Flags().GetString("output")

		styles, err := loadStyles(cmd)
		if err != nil {
			return err
		}
		data, err := loadData(dataPath)
		if err != nil {
			return err
		}

		g := generate.New(styles)
		if err := loadTemplate(cmd, g.Store()); err != nil {
			return err
		}

		if err := g.GenerateToFile(data, outPath); err != nil {
			return err
		}
		color.Green("generated: %s", outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("data", "data.json", "JSON data dictionary file")
	generateCmd.Flags().String("output", "report.docx", "output document path")

	rootCmd.AddCommand(generateCmd)
}
