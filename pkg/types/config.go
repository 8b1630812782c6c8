// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GenerateConfig holds defaults for the generate command, sourced from the
// "generate" section of the config file or environment. Explicit flags and
// job-file values override these.
type GenerateConfig struct {
	// Sheet is the default workbook sheet name.
	Sheet string `json:"sheet" yaml:"sheet" mapstructure:"sheet"`

	// Column is the default filename column header.
	Column string `json:"column" yaml:"column" mapstructure:"column"`

	// Output is the default archive path (default "certificates.zip").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// ShowProgress enables per-page percentage lines on stderr.
	ShowProgress bool `json:"show_progress" yaml:"show_progress" mapstructure:"show_progress"`
}
