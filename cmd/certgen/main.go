// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the certgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the certgen CLI.
var rootCmd = &cobra.Command{
	Use:   "certgen",
	Short: "Generate named certificate PDFs from a master PDF and a spreadsheet",
	Long: `certgen splits a multi-page master PDF into one file per page, names each
file after a cell in a spreadsheet column, and bundles the results into a
zip archive.

Use inspect to list a workbook's sheets and column headers, then generate
to produce the archive. Row i of the chosen column names page i of the PDF;
blank cells are skipped.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./certgen.yaml or ~/.config/certgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("certgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "certgen"))
		}
	}

	viper.SetEnvPrefix("CERTGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
