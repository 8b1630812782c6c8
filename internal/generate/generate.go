// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate pairs workbook names with PDF pages and packages the
// resulting single-page PDFs into a zip archive.
package generate

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/HostServerPress/certificate-generator-app/internal/document"
	"github.com/HostServerPress/certificate-generator-app/internal/workbook"
	"github.com/HostServerPress/certificate-generator-app/pkg/types"
)

// PageSource exposes an ordered sequence of pages, each extractable as a
// standalone single-page PDF. *document.Document implements it.
type PageSource interface {
	PageCount() int
	ExtractPage(i int) ([]byte, error)
}

// EnsureExtension appends ".pdf" to name unless it already ends with the
// extension in any case mix. No other normalization is applied.
func EnsureExtension(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return name
	}
	return name + ".pdf"
}

// Archive renders one single-page PDF per (page, name) pair and returns
// them as a deflate-compressed zip. Pairing is positional: name i receives
// page i. Names that normalize to the same filename overwrite earlier
// entries, last write wins.
//
// A name list longer than the document is an advisory, not an error: the
// surplus names are reported through rep, counted in the summary, and
// produce no output. A fatal extraction or packaging failure aborts the
// run; no partial archive is returned.
func Archive(src PageSource, names []string, rep Reporter) ([]byte, types.Summary, error) {
	if rep == nil {
		rep = NopReporter{}
	}

	sum := types.Summary{Pages: src.PageCount(), Names: len(names)}
	if sum.Names > sum.Pages {
		sum.MissingPages = sum.Names - sum.Pages
		rep.Warnf("the workbook lists %d certificates, but the PDF only has %d pages; %d certificate(s) will not be generated",
			sum.Names, sum.Pages, sum.MissingPages)
	}
	rep.Infof("preparing to generate %d certificate(s)", min(sum.Pages, sum.Names))

	type entry struct {
		name string
		data []byte
	}
	var entries []entry
	index := make(map[string]int)

	for i, name := range names {
		if i >= sum.Pages {
			break
		}
		filename := EnsureExtension(name)
		rep.Infof("processing page %d: %s", i+1, filename)

		page, err := src.ExtractPage(i)
		if err != nil {
			return nil, sum, err
		}

		if j, ok := index[filename]; ok {
			entries[j].data = page
		} else {
			index[filename] = len(entries)
			entries = append(entries, entry{name: filename, data: page})
		}
		rep.Progress(float64(i+1) / float64(sum.Names))
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			zw.Close()
			return nil, sum, fmt.Errorf("adding %s to archive: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			zw.Close()
			return nil, sum, fmt.Errorf("writing %s to archive: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, sum, fmt.Errorf("finalizing archive: %w", err)
	}

	sum.Generated = len(entries)
	return buf.Bytes(), sum, nil
}

// Result is the outcome of an end-to-end run.
type Result struct {
	Archive []byte
	Summary types.Summary
}

// Run reads the filename column from the workbook, opens the PDF, and
// delegates to Archive. The sheet and column names are validated against
// the workbook's actual contents even when a caller has already checked
// them; failures surface as *workbook.SheetNotFoundError or
// *workbook.ColumnNotFoundError via errors.As.
func Run(pdf io.ReadSeeker, wb io.Reader, sheet, column string, rep Reporter) (*Result, error) {
	book, err := workbook.Open(wb)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	names, err := book.Column(sheet, column)
	if err != nil {
		return nil, err
	}

	doc, err := document.Open(pdf)
	if err != nil {
		return nil, err
	}

	archive, sum, err := Archive(doc, names, rep)
	if err != nil {
		return nil, err
	}
	return &Result{Archive: archive, Summary: sum}, nil
}
