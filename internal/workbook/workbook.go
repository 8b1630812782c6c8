// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook reads xlsx workbooks: sheet enumeration, header rows,
// and extraction of a single named column with blank cells dropped.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetNotFoundError reports a sheet name absent from the workbook.
// Available holds the workbook's actual sheet names.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

// ColumnNotFoundError reports a column header absent from a sheet.
// Available holds the sheet's actual headers so a caller can show
// alternatives.
type ColumnNotFoundError struct {
	Column    string
	Sheet     string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in sheet %q", e.Column, e.Sheet)
}

// Workbook is a fully parsed xlsx file held in memory for one run.
type Workbook struct {
	f *excelize.File
}

// Open parses an xlsx workbook from r.
func Open(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the parsed workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Headers returns the first-row cell values of sheet.
func (w *Workbook) Headers(sheet string) ([]string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Column returns the cell values of the column whose first-row header
// matches exactly, header row excluded. Blank and whitespace-only cells are
// dropped without preserving their positions, so later values shift up;
// callers pairing values by position see the compacted sequence.
func (w *Workbook) Column(sheet, header string) ([]string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	var headers []string
	if len(rows) > 0 {
		headers = rows[0]
	}

	col := -1
	for i, h := range headers {
		if h == header {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, &ColumnNotFoundError{Column: header, Sheet: sheet, Available: headers}
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows[1:] {
		if col >= len(row) {
			// Short row: the cell is missing entirely.
			continue
		}
		if strings.TrimSpace(row[col]) == "" {
			continue
		}
		values = append(values, row[col])
	}
	return values, nil
}

func (w *Workbook) rows(sheet string) ([][]string, error) {
	sheets := w.f.GetSheetList()
	found := false
	for _, name := range sheets {
		if name == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, &SheetNotFoundError{Sheet: sheet, Available: sheets}
	}

	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}
