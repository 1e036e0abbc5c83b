// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/template"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "List the placeholders of the active template",
	Long: `Placeholders scans the active template and prints the distinct
placeholder names in first-occurrence order, so callers know which keys
the data dictionary should supply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := template.NewStore()
		if err := loadTemplate(cmd, store); err != nil {
			return err
		}

		names := store.Placeholders()
		color.Cyan("%d placeholders:", len(names))
		for _, name := range names {
			fmt.Println("  " + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(placeholdersCmd)
}
