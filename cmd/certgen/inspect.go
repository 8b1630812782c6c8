// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HostServerPress/certificate-generator-app/internal/workbook"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List a workbook's sheets or one sheet's column headers",
	Long: `Inspect opens an xlsx workbook and lists its sheet names, or, with
--sheet, the column headers of that sheet. Use it to find the exact values
to pass to generate.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("workbook", "", "xlsx workbook to inspect")
	inspectCmd.Flags().String("sheet", "", "sheet whose column headers to list")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("workbook")
	if path == "" {
		return fmt.Errorf("--workbook is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	wb, err := workbook.Open(f)
	if err != nil {
		return err
	}
	defer wb.Close()

	sheet, _ := cmd.Flags().GetString("sheet")
	if sheet == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Sheets:")
		for _, name := range wb.Sheets() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		}
		return nil
	}

	headers, err := wb.Headers(sheet)
	if err != nil {
		return describeFailure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Columns in %s:\n", sheet)
	for _, h := range headers {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", h)
	}
	return nil
}
