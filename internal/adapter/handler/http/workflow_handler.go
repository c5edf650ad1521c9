package http

import (
	"net/http"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"
	"github.com/veloguard/veloguard-backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type WorkflowHandler struct {
	workflowService *services.WorkflowService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type StartReportRequest struct {
	BikeID string `json:"bike_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
}

type SubmitFactsRequest struct {
	Location string `json:"location" binding:"required" example:"Hauptbahnhof Köln, Fahrradparkhaus"`
	Details  string `json:"details" binding:"required" example:"Schloss durchtrennt, zwischen 08:00 und 17:30 Uhr"`
	Region   string `json:"region" binding:"required" example:"Nordrhein-Westfalen"`
}

type OnlineSubmissionResponse struct {
	Endpoint *domain.JurisdictionEndpoint `json:"endpoint"`
	Report   *domain.TheftReport          `json:"report"`
}

func NewWorkflowHandler(
	workflowService *services.WorkflowService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Anzeige beginnen
// @Description Startet einen Meldevorgang für ein Fahrrad mit Status SAFE oder FOR_SALE
// @Tags workflows
// @Accept json
// @Produce json
// @Param request body StartReportRequest true "Fahrrad-Auswahl"
// @Success 201 {object} domain.ReportWorkflow "Vorgang gestartet"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Failure 409 {object} errorResponse "Fahrrad nicht meldefähig"
// @Router /workflows [post]
func (h *WorkflowHandler) StartReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req StartReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in start report", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	wf, err := h.workflowService.StartReport(c.Request.Context(), req.BikeID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to start report workflow")
		return
	}

	c.JSON(http.StatusCreated, wf)
}

// @Summary Vorgang abrufen
// @Description Aktueller Zustand eines Meldevorgangs
// @Tags workflows
// @Produce json
// @Param id path string true "Vorgangs-ID"
// @Success 200 {object} domain.ReportWorkflow "Vorgang"
// @Failure 404 {object} errorResponse "Vorgang nicht gefunden"
// @Router /workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	wf, err := h.workflowService.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Workflow not found")
		return
	}

	c.JSON(http.StatusOK, wf)
}

// @Summary Tatangaben einreichen
// @Description Übergibt Tatort, Hergang und Bundesland. Bei vollständigen Angaben wird der Anzeigentext entworfen und der Vorgang wechselt nach DRAFTED
// @Tags workflows
// @Accept json
// @Produce json
// @Param id path string true "Vorgangs-ID"
// @Param request body SubmitFactsRequest true "Tatangaben"
// @Success 200 {object} domain.ReportWorkflow "Entwurf erstellt"
// @Failure 404 {object} errorResponse "Vorgang nicht gefunden"
// @Failure 409 {object} errorResponse "Übergang nicht zulässig"
// @Failure 422 {object} errorResponse "Angaben unvollständig"
// @Router /workflows/{id}/facts [post]
func (h *WorkflowHandler) SubmitFacts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	workflowID := c.Param("id")

	var req SubmitFactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in submit facts", map[string]interface{}{
			"error":       err.Error(),
			"workflow_id": workflowID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	wf, err := h.workflowService.SubmitFacts(c.Request.Context(), workflowID,
		req.Location, req.Details, req.Region)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to submit facts")
		return
	}

	c.JSON(http.StatusOK, wf)
}

// @Summary Angaben überarbeiten
// @Description Setzt einen entworfenen Vorgang zurück nach COLLECTING und verwirft den Entwurfstext
// @Tags workflows
// @Produce json
// @Param id path string true "Vorgangs-ID"
// @Success 200 {object} domain.ReportWorkflow "Vorgang zurückgesetzt"
// @Failure 404 {object} errorResponse "Vorgang nicht gefunden"
// @Failure 409 {object} errorResponse "Übergang nicht zulässig"
// @Router /workflows/{id}/revise [post]
func (h *WorkflowHandler) ReviseFacts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	wf, err := h.workflowService.ReviseFacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to revise facts")
		return
	}

	c.JSON(http.StatusOK, wf)
}

// @Summary Anzeige als PDF
// @Description Erzeugt die Strafanzeige als PDF-Download. Wiederholbar, ändert keinen Zustand
// @Tags workflows
// @Produce application/pdf
// @Param id path string true "Vorgangs-ID"
// @Success 200 {file} binary "PDF-Dokument"
// @Failure 404 {object} errorResponse "Vorgang nicht gefunden"
// @Failure 409 {object} errorResponse "Kein Entwurf vorhanden"
// @Router /workflows/{id}/document [get]
func (h *WorkflowHandler) RenderDocument(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	doc, err := h.workflowService.RenderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to render document")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// @Summary Anzeige bestätigen
// @Description Erstellt die Anzeige verbindlich: TheftReport mit Status SUBMITTED, Fahrrad wird STOLEN
// @Tags workflows
// @Produce json
// @Param id path string true "Vorgangs-ID"
// @Success 201 {object} domain.TheftReport "Anzeige erstellt"
// @Failure 404 {object} errorResponse "Vorgang nicht gefunden"
// @Failure 409 {object} errorResponse "Übergang nicht zulässig"
// @Router /workflows/{id}/confirm [post]
func (h *WorkflowHandler) Confirm(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	report, err := h.workflowService.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to confirm report")
		return
	}

	c.JSON(http.StatusCreated, report)
}

// @Summary Online einreichen
// @Description Löst die Onlinewache des Bundeslands auf und bestätigt die Anzeige in einem Schritt. Ohne Online-Kanal bleibt alles unverändert
// @Tags workflows
// @Produce json
// @Param id path string true "Vorgangs-ID"
// @Success 201 {object} OnlineSubmissionResponse "Anzeige erstellt, Endpoint aufgelöst"
// @Failure 404 {object} errorResponse "Vorgang oder Online-Kanal nicht gefunden"
// @Failure 409 {object} errorResponse "Übergang nicht zulässig"
// @Router /workflows/{id}/online-submission [post]
func (h *WorkflowHandler) SubmitOnline(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	endpoint, report, err := h.workflowService.OpenOnlineChannelAndConfirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to submit report online")
		return
	}

	c.JSON(http.StatusCreated, OnlineSubmissionResponse{Endpoint: endpoint, Report: report})
}

// @Summary Anzeige abrufen
// @Description Eine erstellte Diebstahlanzeige per ID
// @Tags reports
// @Produce json
// @Param id path string true "Anzeigen-ID"
// @Success 200 {object} domain.TheftReport "Anzeige"
// @Failure 404 {object} errorResponse "Anzeige nicht gefunden"
// @Router /reports/{id} [get]
func (h *WorkflowHandler) GetReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	report, err := h.workflowService.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Report not found")
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Anzeigen auflisten
// @Description Alle erstellten Diebstahlanzeigen
// @Tags reports
// @Produce json
// @Success 200 {array} domain.TheftReport "Anzeigen"
// @Failure 500 {object} errorResponse "Interner Fehler"
// @Router /reports [get]
func (h *WorkflowHandler) ListReports(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	reports, err := h.workflowService.ListReports(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}
