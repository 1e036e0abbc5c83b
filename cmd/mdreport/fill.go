// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/template"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill the template and print the resulting Markdown",
	Long: `Fill substitutes the JSON data dictionary into the active template and
emits the filled Markdown, to stdout or to a file. Useful for inspecting
the intermediate document or feeding a separate converter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, _ := cmd.Flags().GetString("data")
		outPath, _ := cmd.Flags().GetString("output")

		data, err := loadData(dataPath)
		if err != nil {
			return err
		}

		store := template.NewStore()
		if err := loadTemplate(cmd, store); err != nil {
			return err
		}

		filled := store.Fill(data)
		if outPath == "" {
			fmt.Print(filled)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(filled), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		color.Green("filled: %s", outPath)
		return nil
	},
}

func init() {
	fillCmd.Flags().String("data", "data.json", "JSON data dictionary file")
	fillCmd.Flags().String("output", "", "output Markdown path (default: stdout)")

	rootCmd.AddCommand(fillCmd)
}
