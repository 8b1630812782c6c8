// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures of the certificate
// generator: job descriptions, run summaries, and command configuration.
package types

import "time"

// Job describes one generation run: the input files, the workbook location
// of the filename column, and where the archive goes. A job can be saved to
// a YAML file and re-run with a single flag.
type Job struct {
	// PDF is the path of the multi-page master PDF.
	PDF string `json:"pdf" yaml:"pdf"`

	// Workbook is the path of the xlsx workbook holding the filename column.
	Workbook string `json:"workbook" yaml:"workbook"`

	// Sheet is the workbook sheet name. Matching is exact and case-sensitive.
	Sheet string `json:"sheet" yaml:"sheet"`

	// Column is the header of the column whose cells name the output files.
	Column string `json:"column" yaml:"column"`

	// Output is the path the zip archive is written to.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Summary holds the counts of one run for display and reporting.
type Summary struct {
	// Pages is the page count of the master PDF.
	Pages int `json:"pages" yaml:"pages"`

	// Names is the number of non-blank cells in the filename column.
	Names int `json:"names" yaml:"names"`

	// Generated is the number of entries written to the archive.
	Generated int `json:"generated" yaml:"generated"`

	// MissingPages counts names that produced no output because the name
	// list was longer than the document.
	MissingPages int `json:"missing_pages,omitempty" yaml:"missing_pages,omitempty"`
}

// Truncated reports whether the run produced fewer certificates than the
// workbook listed.
func (s Summary) Truncated() bool {
	return s.MissingPages > 0
}

// Report is the on-disk record of one completed run.
type Report struct {
	Job       Job       `yaml:"job"`
	Summary   Summary   `yaml:"summary"`
	Archive   string    `yaml:"archive"`
	Timestamp time.Time `yaml:"timestamp"`
}
