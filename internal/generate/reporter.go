// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"io"
)

// Reporter receives progress and log events from a run. Events are
// observational only: implementations never influence the run's outcome.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)

	// Progress reports completion as a fraction in [0, 1]. The denominator
	// is the name count, so a run against a PDF with fewer pages than names
	// ends below 1.
	Progress(fraction float64)
}

// WriterReporter writes one line per event to W. It is the presentation
// layer used by the CLI; tests substitute their own Reporter.
type WriterReporter struct {
	W io.Writer

	// ShowProgress adds a percentage line after each processed page.
	ShowProgress bool
}

func (r WriterReporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.W, format+"\n", args...)
}

func (r WriterReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.W, "warning: "+format+"\n", args...)
}

func (r WriterReporter) Progress(fraction float64) {
	if r.ShowProgress {
		fmt.Fprintf(r.W, "  %3.0f%%\n", fraction*100)
	}
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Infof(string, ...any) {}
func (NopReporter) Warnf(string, ...any) {}
func (NopReporter) Progress(float64)     {}
