package ports

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
)

// TextGenerator is the external text-generation collaborator. Callers
// must treat every error (and empty output) as recoverable.
type TextGenerator interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)

	// GenerateStructured asks for a JSON answer, optionally grounding it
	// on an image. Used by the registration flow's photo analysis.
	GenerateStructured(ctx context.Context, model string, prompt string, image []byte, mimeType string) (string, error)
}

// RenderedDocument is a downloadable artifact produced by the renderer.
type RenderedDocument struct {
	Filename string
	Data     []byte
}

// DocumentRenderer lays out a theft report into a fixed-format document.
// Pure transformation, safe to call repeatedly.
type DocumentRenderer interface {
	Render(report *domain.TheftReport, bike *domain.Bike, owner *domain.OwnerProfile, reportText string, regionLabel string) (*RenderedDocument, error)
}

// JurisdictionDirectory maps a region name to its submission endpoint.
// A miss means "no online channel available", not an error.
type JurisdictionDirectory interface {
	Lookup(region string) (*domain.JurisdictionEndpoint, bool)
	All() []domain.JurisdictionEndpoint
}
