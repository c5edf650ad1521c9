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

type AccessoryHandler struct {
	accessoryService *services.AccessoryService
	bikeService      *services.BikeService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type AccessoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Tacho"`
	Description string `json:"description,omitempty" example:"Garmin Edge 530, am Lenker montiert"`
}

func NewAccessoryHandler(
	accessoryService *services.AccessoryService,
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AccessoryHandler {
	return &AccessoryHandler{
		accessoryService: accessoryService,
		bikeService:      bikeService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Zubehör hinzufügen
// @Description Hängt ein Zubehörteil an ein registriertes Fahrrad
// @Tags accessories
// @Accept json
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Param request body AccessoryRequest true "Zubehördaten"
// @Success 201 {object} successResponse "Zubehör hinzugefügt"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id}/accessories [post]
func (h *AccessoryHandler) AddAccessory(c *gin.Context) {
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

	var req AccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add accessory", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	accessory := &domain.Accessory{
		BikeID:      bike.BikeID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	createdAccessory, err := h.accessoryService.AddAccessory(c.Request.Context(), accessory)
	if err != nil {
		h.logger.Error("Failed to add accessory", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to add accessory")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Accessory added successfully", createdAccessory)
}

// @Summary Zubehör auflisten
// @Description Alle Zubehörteile eines Fahrrads
// @Tags accessories
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Success 200 {array} domain.Accessory "Zubehörliste"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id}/accessories [get]
func (h *AccessoryHandler) GetAccessories(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	accessories, err := h.accessoryService.GetAccessoriesByBikeID(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Error("Failed to get accessories", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get accessories")
		return
	}

	c.JSON(http.StatusOK, accessories)
}

// @Summary Zubehör entfernen
// @Description Entfernt ein Zubehörteil per ID
// @Tags accessories
// @Produce json
// @Param id path string true "Zubehör-ID"
// @Success 200 {object} successResponse "Zubehör entfernt"
// @Failure 404 {object} errorResponse "Zubehör nicht gefunden"
// @Router /accessories/{id} [delete]
func (h *AccessoryHandler) RemoveAccessory(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	accessoryID := c.Param("id")

	if _, err := uuid.Parse(accessoryID); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid accessory ID")
		return
	}

	if err := h.accessoryService.RemoveAccessory(c.Request.Context(), accessoryID); err != nil {
		h.logger.Error("Failed to remove accessory", map[string]interface{}{
			"error":        err.Error(),
			"accessory_id": accessoryID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to remove accessory")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Accessory removed successfully", nil)
}
