package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputs() (*domain.TheftReport, *domain.Bike, *domain.OwnerProfile) {
	report := &domain.TheftReport{
		Location: "Hauptbahnhof Köln",
		Details:  "Schloss durchtrennt",
		Region:   "Nordrhein-Westfalen",
		Status:   domain.ReportPending,
	}
	bike := &domain.Bike{
		FrameNumber: "WTU123X456789",
		Make:        "Canyon",
		Model:       "Spectral 29",
	}
	owner := &domain.OwnerProfile{
		Name:        "Max Mustermann",
		DateOfBirth: "1990-05-14",
		Address:     "Musterstraße 1, 50667 Köln",
		Email:       "max@example.com",
	}
	return report, bike, owner
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer()
	report, bike, owner := testInputs()

	doc, err := r.Render(report, bike, owner, "Hiermit erstatte ich Anzeige wegen Fahrraddiebstahls.", "Nordrhein-Westfalen")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF-"))
	assert.Greater(t, len(doc.Data), 500)
}

func TestRenderFilename(t *testing.T) {
	r := NewRenderer()
	report, bike, owner := testInputs()
	bike.Make = "Riese und Müller"

	doc, err := r.Render(report, bike, owner, "Text", "Bayern")
	require.NoError(t, err)

	dateStr := time.Now().Format("02.01.2006")
	assert.Equal(t, "Diebstahlanzeige_Riese_und_Müller_"+dateStr+".pdf", doc.Filename)
}

func TestRenderHandlesLongReportText(t *testing.T) {
	r := NewRenderer()
	report, bike, owner := testInputs()

	paragraph := strings.Repeat("Der Tathergang stellt sich wie folgt dar. ", 40)
	long := strings.Repeat(paragraph+"\n\n", 30)

	doc, err := r.Render(report, bike, owner, long, "Bayern")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF-"))

	short, err := r.Render(report, bike, owner, "kurz", "Bayern")
	require.NoError(t, err)
	assert.Greater(t, len(doc.Data), len(short.Data))
}

func TestRenderUmlauts(t *testing.T) {
	r := NewRenderer()
	report, bike, owner := testInputs()

	doc, err := r.Render(report, bike, owner, "Gestohlen in Köln, Nähe Dom. Größe des Rads: L.", "Thüringen")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
}
