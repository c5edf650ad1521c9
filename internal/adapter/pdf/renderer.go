package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

const (
	margin     = 20.0
	lineHeight = 7.0
	bodyStep   = 5.0

	// The signature block never slides below this, even for long reports.
	maxSignatureY = 260.0
	pageBreakY    = 270.0
)

// Renderer lays out a theft report as an A4 criminal-complaint letter.
// It holds no state and is safe for concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(report *domain.TheftReport, bike *domain.Bike, owner *domain.OwnerProfile, reportText string, regionLabel string) (*ports.RenderedDocument, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := doc.GetPageSize()
	maxLineWidth := pageWidth - margin*2

	doc.AddPage()
	y := 20.0

	// Sender block.
	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, y, tr(fmt.Sprintf("%s, %s", owner.Name, owner.Address)))
	y += lineHeight
	doc.Text(margin, y, tr(fmt.Sprintf("Geburtsdatum: %s", owner.DateOfBirth)))
	y += lineHeight
	doc.Text(margin, y, tr(fmt.Sprintf("Email: %s", owner.Email)))

	y += 15
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(margin, y, tr(fmt.Sprintf("An die Polizeidienststelle (%s) / Onlinewache", regionLabel)))

	y += 15
	dateStr := time.Now().Format("02.01.2006")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(pageWidth-margin-40, y, tr(fmt.Sprintf("Datum: %s", dateStr)))

	y += 15
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(margin, y, "STRAFANZEIGE / STRAFANTRAG")
	y += 8
	doc.SetFontSize(12)
	doc.Text(margin, y, tr("Wegen: Fahrraddiebstahl (Besonders schwerer Fall des Diebstahls)"))

	y += 15
	doc.SetFont("Helvetica", "", 10)

	for _, paragraph := range strings.Split(reportText, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			y += bodyStep
			continue
		}
		for _, line := range doc.SplitText(tr(paragraph), maxLineWidth) {
			if y > pageBreakY {
				doc.AddPage()
				y = margin
			}
			doc.Text(margin, y, line)
			y += bodyStep
		}
	}

	if y+25 > pageBreakY {
		doc.AddPage()
		y = margin
	}
	finalY := y + 20
	if finalY > maxSignatureY {
		finalY = maxSignatureY
	}
	doc.Text(margin, finalY, "__________________________________")
	doc.Text(margin, finalY+5, tr("Unterschrift (bei postalischem Versand)"))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return &ports.RenderedDocument{
		Filename: fmt.Sprintf("Diebstahlanzeige_%s_%s.pdf", sanitize(bike.Make), dateStr),
		Data:     buf.Bytes(),
	}, nil
}

// sanitize keeps the filename portable across download targets.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Fahrrad"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, s)
}
