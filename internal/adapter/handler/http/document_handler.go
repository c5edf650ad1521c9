package http

import (
	"net/http"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"
	"github.com/veloguard/veloguard-backend/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	documentService *services.DocumentService
	bikeService     *services.BikeService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type DocumentRequest struct {
	Name       string `json:"name" binding:"required" example:"Kaufbeleg Mai 2023"`
	Category   string `json:"category" binding:"required" example:"RECEIPT_PURCHASE"`
	ContentRef string `json:"content_ref,omitempty" example:"uploads/kaufbeleg.pdf"`
}

func NewDocumentHandler(
	documentService *services.DocumentService,
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		bikeService:     bikeService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Dokument anhängen
// @Description Hängt ein Dokument (Kaufbeleg, Versicherungsschein etc.) an ein registriertes Fahrrad
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Param request body DocumentRequest true "Dokumentdaten"
// @Success 201 {object} successResponse "Dokument angehängt"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id}/documents [post]
func (h *DocumentHandler) AddDocument(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, http.StatusNotFound, "Bike not found")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add document", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	document := &domain.BikeDocument{
		Name:       req.Name,
		Category:   domain.DocumentCategory(req.Category),
		ContentRef: req.ContentRef,
		DateAdded:  time.Now(),
	}

	createdDocument, err := h.documentService.AddDocument(c.Request.Context(), bike.BikeID.String(), document)
	if err != nil {
		h.logger.Error("Failed to add document", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to add document")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Document added successfully", createdDocument)
}

// @Summary Dokumente auflisten
// @Description Alle angehängten Dokumente eines Fahrrads
// @Tags documents
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Success 200 {array} domain.BikeDocument "Dokumentliste"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id}/documents [get]
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	documents, err := h.documentService.GetDocumentsByBikeID(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Error("Failed to get documents", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// @Summary Dokument entfernen
// @Description Entfernt ein angehängtes Dokument per ID
// @Tags documents
// @Produce json
// @Param id path string true "Dokument-ID"
// @Success 200 {object} successResponse "Dokument entfernt"
// @Failure 404 {object} errorResponse "Dokument nicht gefunden"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) RemoveDocument(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	documentID := c.Param("id")

	if _, err := uuid.Parse(documentID); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.documentService.RemoveDocument(c.Request.Context(), documentID); err != nil {
		h.logger.Error("Failed to remove document", map[string]interface{}{
			"error":       err.Error(),
			"document_id": documentID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to remove document")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Document removed successfully", nil)
}
