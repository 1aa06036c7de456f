// Package handout renders the questions drawn in a session as a PDF the
// instructor can keep or share after class.
package handout

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Entry is one drawn question.
type Entry struct {
	Author    string
	Body      string
	WeekLabel string
}

// Handout describes the document to render.
type Handout struct {
	Title       string
	SessionID   string
	Date        time.Time
	Total       int // questions in the session pool
	Entries     []Entry
	ShowAuthors bool
}

// compress toggles stream compression; tests turn it off to inspect text.
var compress = true

// ErrNothingDrawn is returned when there are no entries to render.
var ErrNothingDrawn = errors.New("no questions drawn yet")

// Render lays out the handout on A4 portrait pages and returns the PDF bytes.
func Render(h Handout) ([]byte, error) {
	if len(h.Entries) == 0 {
		return nil, ErrNothingDrawn
	}
	if h.Title == "" {
		h.Title = "Discussion Questions"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; labels carry em dashes and names may not be ASCII.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCompression(compress)
	pdf.SetTitle(h.Title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(h.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("%s | %d of %d questions drawn", h.Date.Format("2006-01-02"), len(h.Entries), h.Total),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, e := range h.Entries {
		pdf.SetFont("Helvetica", "B", 12)
		heading := fmt.Sprintf("%d. %s", i+1, e.WeekLabel)
		if h.ShowAuthors && e.Author != "" {
			heading += " (" + e.Author + ")"
		}
		pdf.MultiCell(0, 7, tr(heading), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(e.Body), "", "L", false)
		pdf.Ln(4)
	}

	if h.SessionID != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, "Session: "+h.SessionID, "", 1, "R", false, 0, "")
	}

	return outputBytes(pdf)
}

func outputBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render handout: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render handout: %w", err)
	}
	return buf.Bytes(), nil
}
