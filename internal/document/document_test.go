// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/HostServerPress/certificate-generator-app/internal/pdftest"
)

func TestOpen_PageCount(t *testing.T) {
	for _, n := range []int{1, 3, 7} {
		t.Run(fmt.Sprintf("%d pages", n), func(t *testing.T) {
			doc, err := Open(bytes.NewReader(pdftest.MultiPage(t, n)))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if got := doc.PageCount(); got != n {
				t.Errorf("PageCount() = %d, want %d", got, n)
			}
		})
	}
}

func TestOpen_InvalidInput(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("this is not a pdf")))
	if err == nil {
		t.Fatal("Open should fail on non-PDF input")
	}
}

func TestExtractPage(t *testing.T) {
	doc, err := Open(bytes.NewReader(pdftest.MultiPage(t, 3)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i := 0; i < 3; i++ {
		page, err := doc.ExtractPage(i)
		if err != nil {
			t.Fatalf("ExtractPage(%d): %v", i, err)
		}
		if len(page) == 0 {
			t.Fatalf("ExtractPage(%d) returned no bytes", i)
		}

		// The extracted bytes must themselves parse as a one-page PDF.
		single, err := Open(bytes.NewReader(page))
		if err != nil {
			t.Fatalf("reopening extracted page %d: %v", i, err)
		}
		if got := single.PageCount(); got != 1 {
			t.Errorf("extracted page %d has %d pages, want 1", i, got)
		}
	}
}

func TestExtractPage_Deterministic(t *testing.T) {
	src := pdftest.MultiPage(t, 2)

	doc1, err := Open(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	first, err := doc1.ExtractPage(0)
	if err != nil {
		t.Fatalf("first extraction: %v", err)
	}

	// Cross a wall-clock second so stamped metadata would differ.
	time.Sleep(1100 * time.Millisecond)

	doc2, err := Open(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	second, err := doc2.ExtractPage(0)
	if err != nil {
		t.Fatalf("second extraction: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("extracting the same page twice must yield identical bytes")
	}
}

func TestExtractPage_SourceUnchanged(t *testing.T) {
	doc, err := Open(bytes.NewReader(pdftest.MultiPage(t, 2)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := doc.ExtractPage(0); err != nil {
		t.Fatalf("ExtractPage(0): %v", err)
	}
	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() after extraction = %d, want 2", got)
	}
	if _, err := doc.ExtractPage(1); err != nil {
		t.Errorf("ExtractPage(1) after prior extraction: %v", err)
	}
}

func TestExtractPage_OutOfRange(t *testing.T) {
	doc, err := Open(bytes.NewReader(pdftest.MultiPage(t, 2)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, i := range []int{-1, 2, 10} {
		if _, err := doc.ExtractPage(i); err == nil {
			t.Errorf("ExtractPage(%d) should fail", i)
		}
	}
}
