// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads paginated PDFs and extracts individual pages as
// standalone single-page PDFs, entirely in memory.
package document

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is a parsed PDF whose pages are addressed by 0-based position.
// A Document belongs to one run; it is read-only once opened.
type Document struct {
	ctx *model.Context
}

// Open parses and validates a PDF from rs. Validation is relaxed so that
// documents with minor spec violations still open.
func Open(rs io.ReadSeeker) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validating PDF: %w", err)
	}
	return &Document{ctx: ctx}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// ExtractPage returns page i (0-based) encoded as an independent
// single-page PDF. The source document is left untouched. Output is
// byte-stable: extracting the same page of the same document twice yields
// identical bytes, no matter how far apart the runs are.
func (d *Document) ExtractPage(i int) ([]byte, error) {
	if i < 0 || i >= d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range [0, %d)", i, d.ctx.PageCount)
	}

	single, err := pdfcpu.ExtractPages(d.ctx, []int{i + 1}, false)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d: %w", i, err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(single, &buf); err != nil {
		return nil, fmt.Errorf("encoding page %d: %w", i, err)
	}
	return pinVolatileMetadata(buf.Bytes()), nil
}

// pdfcpu stamps the wall clock into the Info dict of every document it
// writes and derives a fresh trailer /ID per write. Identical inputs must
// yield identical bytes, so both get pinned. Replacements are
// length-preserving, keeping the cross-reference offsets valid.
var (
	dateStampRe = regexp.MustCompile(`D:\d{14}`)
	fileIDRe    = regexp.MustCompile(`/ID\s*\[\s*<[0-9A-Fa-f]+>\s*<[0-9A-Fa-f]+>\s*\]`)
)

const pinnedDateStamp = "D:20000101000000"

func pinVolatileMetadata(pdf []byte) []byte {
	pdf = dateStampRe.ReplaceAll(pdf, []byte(pinnedDateStamp))
	return fileIDRe.ReplaceAllFunc(pdf, func(m []byte) []byte {
		out := make([]byte, len(m))
		inHex := false
		for i, b := range m {
			switch b {
			case '<':
				inHex = true
			case '>':
				inHex = false
			}
			if inHex && b != '<' {
				out[i] = '0'
			} else {
				out[i] = b
			}
		}
		return out
	})
}
