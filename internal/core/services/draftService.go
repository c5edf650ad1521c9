package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"
)

// User-facing fallback sentences. The collaborator may fail or answer
// with empty text; callers always get a non-empty string back.
const (
	FallbackDescription = "Konnte Beschreibung nicht automatisch generieren."
	FallbackReport      = "Konnte keinen formellen Bericht generieren."

	noFeaturesPlaceholder    = "Keine besonderen Merkmale angegeben."
	noAccessoriesPlaceholder = "Kein besonderes Zubehör gelistet."
	noInsurancePlaceholder   = "Versicherung: Keine Angabe"
)

// DraftService composes prompts for the text-generation collaborator and
// degrades to literal fallback strings on any failure. It never returns
// an error past its boundary and performs a single attempt per call; the
// caller may retry by invoking the same operation again.
type DraftService struct {
	generator        ports.TextGenerator
	logger           ports.LoggerPort
	descriptionModel string
	reportModel      string
}

func NewDraftService(
	generator ports.TextGenerator,
	logger ports.LoggerPort,
	descriptionModel string,
	reportModel string,
) *DraftService {
	return &DraftService{
		generator:        generator,
		logger:           logger,
		descriptionModel: descriptionModel,
		reportModel:      reportModel,
	}
}

// DraftDescription produces a concise factual description for the
// registration record, under ~100 words.
func (s *DraftService) DraftDescription(ctx context.Context, make, model, color, features string) string {
	prompt := fmt.Sprintf(`Schreibe eine professionelle und detaillierte Beschreibung für eine Fahrrad-Registrierungsdatenbank auf Deutsch.
Fahrrad Details:
Marke: %s
Modell: %s
Farbe: %s
Besondere Merkmale: %s

Halte dich an Fakten, sei prägnant (unter 100 Wörter) und nutze Sprache, die für eine polizeiliche Identifizierung geeignet ist.`, make, model, color, features)

	text, err := s.generator.GenerateText(ctx, s.descriptionModel, prompt)
	if err != nil {
		s.logger.Warn("Description generation failed", map[string]interface{}{
			"error": err.Error(),
			"make":  make,
		})
		return FallbackDescription
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Description generation returned empty text", map[string]interface{}{
			"make": make,
		})
		return FallbackDescription
	}
	return text
}

// DraftTheftReport assembles the fact sheet from the bike record and asks
// for a formal, authority-suitable written statement. Owner identity is
// deliberately left out of the payload; it is inserted only into the
// rendered document.
func (s *DraftService) DraftTheftReport(ctx context.Context, bike *domain.Bike, incidentDetails, location string) string {
	prompt := fmt.Sprintf(`Erstelle den Entwurf einer formellen Diebstahlanzeige für die Polizei (auf Deutsch) für das folgende Fahrrad.

Eigentümer Details: [Ausgeblendet für Entwurf]

%s

Formatiere dies als formelles Schreiben oder Protokoll, das direkt an eine Polizeidienststelle in Deutschland übermittelt werden kann. Verwende amtliche, sachliche Sprache.`, s.factSheet(bike, incidentDetails, location))

	text, err := s.generator.GenerateText(ctx, s.reportModel, prompt)
	if err != nil {
		s.logger.Warn("Report generation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bike.BikeID,
		})
		return FallbackReport
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Report generation returned empty text", map[string]interface{}{
			"bike_id": bike.BikeID,
		})
		return FallbackReport
	}
	return text
}

// factSheet renders the structured facts sent to the collaborator.
// Distinctive features and accessories always appear, with explicit
// placeholders when empty; they are identification-critical and must
// never be silently dropped.
func (s *DraftService) factSheet(bike *domain.Bike, incidentDetails, location string) string {
	insuranceInfo := noInsurancePlaceholder
	if bike.InsuranceProvider != "" {
		policy := bike.InsurancePolicyNumber
		if policy == "" {
			policy = "N/A"
		}
		insuranceInfo = fmt.Sprintf("Versicherung: %s (Police: %s)", bike.InsuranceProvider, policy)
	}

	storageInfo := ""
	if bike.StorageLocation != "" {
		storageInfo = fmt.Sprintf("Gewöhnlicher Abstellort: %s\n", bike.StorageLocation)
	}

	price := "k.A."
	if bike.PurchasePrice > 0 {
		price = fmt.Sprintf("%.2f EUR", bike.PurchasePrice)
	}
	purchaseInfo := fmt.Sprintf("Kaufdaten: Datum %s, Preis %s, Zustand beim Kauf: %s",
		bike.PurchaseDate, price, bike.Condition)

	featuresInfo := bike.DistinctiveFeatures
	if strings.TrimSpace(featuresInfo) == "" {
		featuresInfo = noFeaturesPlaceholder
	}

	accessoriesList := noAccessoriesPlaceholder
	if len(bike.Accessories) > 0 {
		lines := make([]string, 0, len(bike.Accessories))
		for _, a := range bike.Accessories {
			lines = append(lines, fmt.Sprintf("- %s: %s", a.Name, a.Description))
		}
		accessoriesList = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Fahrzeugdaten:
Marke: %s
Modell: %s
Rahmennummer: %s
Farbe: %s
Beschreibung: %s
%s
%sBesondere Identifikationsmerkmale (WICHTIG):
%s

Nachträglich angebrachtes Zubehör:
%s

Finanzieller/Rechtlicher Kontext:
%s

Tathergang:
Ort: %s
Details: %s`,
		bike.Make, bike.Model, bike.FrameNumber, bike.Color, bike.Description,
		purchaseInfo, storageInfo, featuresInfo, accessoriesList, insuranceInfo,
		location, incidentDetails)
}

// BikeImageAnalysis is the best-effort result of photo analysis feeding
// the registration form.
type BikeImageAnalysis struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// AnalyzeBikeImage extracts probable make, model, color and type from a
// bike photo. Degrades to an empty result on any collaborator failure.
func (s *DraftService) AnalyzeBikeImage(ctx context.Context, image []byte, mimeType string) *BikeImageAnalysis {
	prompt := "Analysiere dieses Fahrradbild. Extrahiere wahrscheinlich Marke, Modell (falls sichtbar), Farbe und Typ. Antworte als JSON mit den Schlüsseln: make, model, color, type."

	text, err := s.generator.GenerateStructured(ctx, s.descriptionModel, prompt, image, mimeType)
	if err != nil {
		s.logger.Warn("Image analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &BikeImageAnalysis{}
	}

	analysis := &BikeImageAnalysis{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), analysis); err != nil {
		s.logger.Warn("Image analysis returned malformed JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return &BikeImageAnalysis{}
	}
	return analysis
}
