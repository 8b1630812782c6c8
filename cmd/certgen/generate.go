// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HostServerPress/certificate-generator-app/internal/generate"
	"github.com/HostServerPress/certificate-generator-app/internal/workbook"
	"github.com/HostServerPress/certificate-generator-app/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Split the master PDF into named certificates and zip them",
	Long: `Generate reads one column of an xlsx workbook as the list of output
filenames, extracts the matching page of the master PDF for each row, and
writes a zip archive holding one single-page PDF per row.

Sheet and column matching is exact and case-sensitive; use inspect to see
the valid names. If the workbook lists more certificates than the PDF has
pages, the surplus rows are reported and skipped.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("pdf", "", "multi-page master PDF")
	generateCmd.Flags().String("workbook", "", "xlsx workbook holding the filename column")
	generateCmd.Flags().String("sheet", "", "workbook sheet name")
	generateCmd.Flags().String("column", "", "header of the filename column")
	generateCmd.Flags().String("output", "", "output zip path (default certificates.zip)")
	generateCmd.Flags().String("job", "", "YAML job file supplying any of the above")
	generateCmd.Flags().String("report", "", "write a YAML run report to this path")
	generateCmd.Flags().Bool("progress", false, "print per-page progress percentages")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	job, cfg, err := resolveJob(cmd)
	if err != nil {
		return err
	}
	if job.PDF == "" || job.Workbook == "" || job.Sheet == "" || job.Column == "" {
		return fmt.Errorf("pdf, workbook, sheet, and column are required (via flags, --job, or config)")
	}

	pdfFile, err := os.Open(job.PDF)
	if err != nil {
		return fmt.Errorf("opening PDF: %w", err)
	}
	defer pdfFile.Close()

	wbFile, err := os.Open(job.Workbook)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer wbFile.Close()

	showProgress := cfg.ShowProgress
	if cmd.Flags().Changed("progress") {
		showProgress, _ = cmd.Flags().GetBool("progress")
	}
	rep := generate.WriterReporter{W: cmd.ErrOrStderr(), ShowProgress: showProgress}

	res, err := generate.Run(pdfFile, wbFile, job.Sheet, job.Column, rep)
	if err != nil {
		return describeFailure(err)
	}

	if err := os.WriteFile(job.Output, res.Archive, 0o644); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := generate.WriteReport(reportPath, job, res.Summary, job.Output); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d certificate(s) from %d page(s)\n",
		job.Output, res.Summary.Generated, res.Summary.Pages)
	if res.Summary.Truncated() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) had no matching page\n", res.Summary.MissingPages)
	}
	return nil
}

// resolveJob merges the job file, explicit flags, and config defaults into
// one job description. Explicit flags win over the job file; the job file
// wins over config defaults.
func resolveJob(cmd *cobra.Command) (types.Job, types.GenerateConfig, error) {
	var cfg types.GenerateConfig
	if err := viper.UnmarshalKey("generate", &cfg); err != nil {
		return types.Job{}, cfg, fmt.Errorf("reading generate config: %w", err)
	}

	var job types.Job
	if path, _ := cmd.Flags().GetString("job"); path != "" {
		j, err := generate.ReadJob(path)
		if err != nil {
			return job, cfg, err
		}
		job = *j
	}

	merge := func(flag string, dst *string, configDefault string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
			return
		}
		if *dst == "" {
			*dst = configDefault
		}
	}
	merge("pdf", &job.PDF, "")
	merge("workbook", &job.Workbook, "")
	merge("sheet", &job.Sheet, cfg.Sheet)
	merge("column", &job.Column, cfg.Column)
	merge("output", &job.Output, cfg.Output)
	if job.Output == "" {
		job.Output = "certificates.zip"
	}
	return job, cfg, nil
}

// describeFailure augments the typed pipeline errors with the valid
// alternatives so the user can correct the input and re-run.
func describeFailure(err error) error {
	var cnf *workbook.ColumnNotFoundError
	if errors.As(err, &cnf) {
		return fmt.Errorf("%w\navailable columns: %s", err, strings.Join(cnf.Available, ", "))
	}
	var snf *workbook.SheetNotFoundError
	if errors.As(err, &snf) {
		return fmt.Errorf("%w\navailable sheets: %s", err, strings.Join(snf.Available, ", "))
	}
	return err
}
