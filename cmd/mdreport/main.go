// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdreport CLI, a thin wrapper
// around template filling and Markdown-to-docx conversion.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdreport/internal/template"
	"github.com/pdiddy/mdreport/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdreport CLI.
var rootCmd = &cobra.Command{
	Use:   "mdreport",
	Short: "Fill Markdown report templates and render them as .docx",
	Long: `mdreport fills {{placeholder}} tokens in a Markdown template from a JSON
data dictionary and renders the result as a styled word-processor document.

Each step is a subcommand: placeholders lists what data a template needs,
fill produces the substituted Markdown, convert turns Markdown files into
.docx, generate does fill and convert in one pass, and preview renders the
filled document in the terminal.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdreport.yaml or ~/.config/mdreport/config.yaml)")
	rootCmd.PersistentFlags().String("styles", "", "style table YAML file (overrides the config file's styles)")
	rootCmd.PersistentFlags().String("template", "", "custom Markdown template file (default: built-in report template)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdreport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdreport"))
		}
	}

	viper.SetEnvPrefix("MDREPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadStyles resolves the style table: --styles flag first, then the
// styles_file key of the config, then the built-in defaults.
func loadStyles(cmd *cobra.Command) (types.StyleConfig, error) {
	path, _ := cmd.Flags().GetString("styles")
	if path == "" {
		path = viper.GetString("styles_file")
	}
	if path == "" {
		return types.DefaultStyles(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.StyleConfig{}, fmt.Errorf("reading styles: %w", err)
	}
	var cfg types.StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.StyleConfig{}, fmt.Errorf("parsing styles: %w", err)
	}
	return cfg.Normalize(), nil
}

// loadTemplate installs a custom template into the store when the
// --template flag or the template_file config key names one.
func loadTemplate(cmd *cobra.Command, store *template.Store) error {
	path, _ := cmd.Flags().GetString("template")
	if path == "" {
		path = viper.GetString("template_file")
	}
	if path == "" {
		return nil
	}
	return store.LoadFile(path)
}

// loadData reads a JSON data dictionary file, keeping key order.
func loadData(path string) (*types.DataDict, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	var data types.DataDict
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return &data, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
