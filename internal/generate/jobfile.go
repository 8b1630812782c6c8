// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/HostServerPress/certificate-generator-app/pkg/types"
)

// ReadJob loads a YAML job file. A job file names the input files, the
// sheet and column to read, and optionally the output path, so a recurring
// batch can be re-run with a single flag.
func ReadJob(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var job types.Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	return &job, nil
}

// WriteReport saves a YAML record of a completed run: the job parameters,
// the run counts, the archive path, and a timestamp.
func WriteReport(path string, job types.Job, sum types.Summary, archivePath string) error {
	report := types.Report{
		Job:       job,
		Summary:   sum,
		Archive:   archivePath,
		Timestamp: time.Now().UTC(),
	}
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
