package services

import (
	"context"
	"errors"
	"testing"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBike() *domain.Bike {
	return &domain.Bike{
		FrameNumber:         "WTU123X456789",
		Make:                "Canyon",
		Model:               "Spectral 29",
		Color:               "Stealth",
		Description:         "Mountainbike mit Carbonrahmen",
		DistinctiveFeatures: "Kratzer am Oberrohr",
		Condition:           domain.ConditionUsed,
		PurchaseDate:        "2023-04-12",
		PurchasePrice:       3499,
	}
}

func TestDraftDescriptionFallsBackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unavailable")}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	got := s.DraftDescription(context.Background(), "Canyon", "Spectral", "Stealth", "")
	assert.Equal(t, FallbackDescription, got)
}

func TestDraftDescriptionFallsBackOnWhitespace(t *testing.T) {
	gen := &fakeGenerator{text: "  \n\t"}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	got := s.DraftDescription(context.Background(), "Canyon", "Spectral", "Stealth", "")
	assert.Equal(t, FallbackDescription, got)
}

func TestDraftDescriptionPassesThroughText(t *testing.T) {
	gen := &fakeGenerator{text: "Schwarzes Canyon Spectral 29 in gutem Zustand."}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	got := s.DraftDescription(context.Background(), "Canyon", "Spectral 29", "Stealth", "Kratzer")
	assert.Equal(t, gen.text, got)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Marke: Canyon")
	assert.Contains(t, gen.prompts[0], "Farbe: Stealth")
}

func TestDraftTheftReportPromptContainsFacts(t *testing.T) {
	gen := &fakeGenerator{text: "Anzeige"}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	bike := testBike()
	bike.Accessories = []*domain.Accessory{
		{Name: "Tacho", Description: "Garmin Edge 530"},
	}
	bike.InsuranceProvider = "ENRA"
	bike.InsurancePolicyNumber = "POL-99812"
	bike.StorageLocation = "Fahrradkeller"

	s.DraftTheftReport(context.Background(), bike, "Schloss durchtrennt", "Hauptbahnhof Köln")

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Rahmennummer: WTU123X456789")
	assert.Contains(t, prompt, "- Tacho: Garmin Edge 530")
	assert.Contains(t, prompt, "Versicherung: ENRA (Police: POL-99812)")
	assert.Contains(t, prompt, "Gewöhnlicher Abstellort: Fahrradkeller")
	assert.Contains(t, prompt, "Ort: Hauptbahnhof Köln")
	assert.Contains(t, prompt, "Details: Schloss durchtrennt")
}

func TestDraftTheftReportPlaceholders(t *testing.T) {
	gen := &fakeGenerator{text: "Anzeige"}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	bike := testBike()
	bike.DistinctiveFeatures = "   "

	s.DraftTheftReport(context.Background(), bike, "Details", "Ort")

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]

	// Identification-critical sections are never silently dropped.
	assert.Contains(t, prompt, noFeaturesPlaceholder)
	assert.Contains(t, prompt, noAccessoriesPlaceholder)
	assert.Contains(t, prompt, noInsurancePlaceholder)
}

func TestDraftTheftReportExcludesOwnerIdentity(t *testing.T) {
	gen := &fakeGenerator{text: "Anzeige"}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	s.DraftTheftReport(context.Background(), testBike(), "Details", "Ort")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "[Ausgeblendet für Entwurf]")
	assert.NotContains(t, gen.prompts[0], "Max Mustermann")
}

func TestDraftTheftReportFallsBackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	got := s.DraftTheftReport(context.Background(), testBike(), "Details", "Ort")
	assert.Equal(t, FallbackReport, got)
}

func TestAnalyzeBikeImage(t *testing.T) {
	gen := &fakeGenerator{text: `{"make":"Canyon","model":"Spectral","color":"Schwarz","type":"MTB"}`}
	s := NewDraftService(gen, noopLogger{}, "m", "m")

	got := s.AnalyzeBikeImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	assert.Equal(t, "Canyon", got.Make)
	assert.Equal(t, "MTB", got.Type)
}

func TestAnalyzeBikeImageDegradesOnFailure(t *testing.T) {
	for name, gen := range map[string]*fakeGenerator{
		"error":         {err: errors.New("unavailable")},
		"malformed":     {text: "not json"},
		"empty payload": {text: ""},
	} {
		t.Run(name, func(t *testing.T) {
			s := NewDraftService(gen, noopLogger{}, "m", "m")
			got := s.AnalyzeBikeImage(context.Background(), []byte{0x01}, "image/png")
			assert.Equal(t, &BikeImageAnalysis{}, got)
		})
	}
}
