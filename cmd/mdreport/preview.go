// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/markdown"
	"github.com/pdiddy/mdreport/internal/preview"
	"github.com/pdiddy/mdreport/internal/template"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the filled document in the terminal",
	Long: `Preview fills the active template from the JSON data dictionary and
renders the result as styled terminal text, so the document can be
checked before converting it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, _ := cmd.Flags().GetString("data")

		styles, err := loadStyles(cmd)
		if err != nil {
			return err
		}
		data, err := loadData(dataPath)
		if err != nil {
			return err
		}

		store := template.NewStore()
		if err := loadTemplate(cmd, store); err != nil {
			return err
		}

		blocks := markdown.NewParser().ParseString(store.Fill(data))
		fmt.Print(preview.New(styles).Render(blocks))
		return nil
	},
}

func init() {
	previewCmd.Flags().String("data", "data.json", "JSON data dictionary file")

	rootCmd.AddCommand(previewCmd)
}
