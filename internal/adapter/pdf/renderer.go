// Package pdf renders generated plan text as a single-page letter document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/pdf"

// Page geometry in points, mirroring a letter-sized page with the title
// near the top-left and the body below it.
const (
	marginLeft = 40
	titleY     = 40
	bodyStartY = 60
	leading    = 14

	titleFontSize = 14
	bodyFontSize  = 10
)

// Renderer produces single-page PDFs in memory. One input line per
// rendered line, in input order, with no word-wrap and no pagination:
// text past the bottom of the page is clipped, which is accepted
// behavior. The creation date is pinned so identical input renders
// byte-identical output.
type Renderer struct{}

// Render encodes the given text under a bold title and returns the
// complete document bytes.
func (Renderer) Render(text, title string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(time.Unix(0, 0).UTC())
	doc.AddPage()

	// Core fonts are cp1252; translate so Spanish plans keep their accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.Text(marginLeft, titleY, tr(title))

	doc.SetFont("Helvetica", "", bodyFontSize)
	y := float64(bodyStartY)
	for _, line := range strings.Split(text, "\n") {
		doc.Text(marginLeft, y, tr(line))
		y += leading
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
