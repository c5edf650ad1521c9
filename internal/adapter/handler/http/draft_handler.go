package http

import (
	"io"
	"net/http"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/ports"
	"github.com/veloguard/veloguard-backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploaded bike photos at 8 MiB.
const maxImageBytes = 8 << 20

type DraftHandler struct {
	draftService *services.DraftService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type DescriptionRequest struct {
	Make     string `json:"make" binding:"required" example:"Canyon"`
	Model    string `json:"model,omitempty" example:"Spectral 29"`
	Color    string `json:"color,omitempty" example:"Stealth"`
	Features string `json:"features,omitempty" example:"Kratzer am Oberrohr"`
}

type DescriptionResponse struct {
	Description string `json:"description"`
}

func NewDraftHandler(
	draftService *services.DraftService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Beschreibung generieren
// @Description KI-generierte Registrierungsbeschreibung. Liefert bei Generierungsfehlern einen Fallback-Text, nie einen Fehler
// @Tags ai
// @Accept json
// @Produce json
// @Param request body DescriptionRequest true "Fahrrad-Eckdaten"
// @Success 200 {object} DescriptionResponse "Generierte Beschreibung"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Router /ai/description [post]
func (h *DraftHandler) GenerateDescription(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in generate description", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	description := h.draftService.DraftDescription(c.Request.Context(),
		req.Make, req.Model, req.Color, req.Features)

	c.JSON(http.StatusOK, DescriptionResponse{Description: description})
}

// @Summary Fahrradfoto analysieren
// @Description Extrahiert Marke, Modell, Farbe und Typ aus einem Foto. Liefert bei Analysefehlern ein leeres Ergebnis
// @Tags ai
// @Accept mpfd
// @Produce json
// @Param image formData file true "Fahrradfoto"
// @Success 200 {object} services.BikeImageAnalysis "Analyseergebnis"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Router /ai/analyze-image [post]
func (h *DraftHandler) AnalyzeImage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Image file required")
		return
	}
	if fileHeader.Size > maxImageBytes {
		newErrorResponse(c, http.StatusBadRequest, "Image too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to open image")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to read image")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	analysis := h.draftService.AnalyzeBikeImage(c.Request.Context(), image, mimeType)

	c.JSON(http.StatusOK, analysis)
}
