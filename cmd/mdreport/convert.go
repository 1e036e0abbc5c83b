// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert Markdown files to .docx documents",
	Long: `Convert renders one or more Markdown files as .docx documents. With a
single input, --output names the result; with several, each document
lands in --output-dir named after its source file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")
		outDir, _ := cmd.Flags().GetString("output-dir")

		styles, err := loadStyles(cmd)
		if err != nil {
			return err
		}
		c := convert.New(styles)

		if outPath != "" {
			if len(args) != 1 {
				return fmt.Errorf("--output requires exactly one input file")
			}
			if err := c.ConvertFile(args[0], outPath); err != nil {
				return err
			}
			color.Green("converted: %s -> %s", args[0], outPath)
			return nil
		}

		result := c.ConvertBatch(args, outDir, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("output", "", "output path for a single input file")
	convertCmd.Flags().String("output-dir", ".", "directory for batch output")

	rootCmd.AddCommand(convertCmd)
}
