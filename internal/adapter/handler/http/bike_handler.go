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

type BikeHandler struct {
	bikeService *services.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type BikeRequest struct {
	OwnerID               string  `json:"owner_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	FrameNumber           string  `json:"frame_number" binding:"required" example:"WTU123X456789"`
	Make                  string  `json:"make" binding:"required" example:"Canyon"`
	Model                 string  `json:"model,omitempty" example:"Spectral 29"`
	Color                 string  `json:"color,omitempty" example:"Stealth"`
	Description           string  `json:"description,omitempty"`
	DistinctiveFeatures   string  `json:"distinctive_features,omitempty" example:"Kratzer am Oberrohr, GPS-Tracker"`
	Condition             string  `json:"condition,omitempty" example:"GEBRAUCHT"`
	PurchaseDate          string  `json:"purchase_date,omitempty" example:"2023-04-12"`
	PurchasePrice         float64 `json:"purchase_price,omitempty" example:"3499.00"`
	StorageLocation       string  `json:"storage_location,omitempty" example:"Fahrradkeller, Musterstr. 12"`
	InsuranceProvider     string  `json:"insurance_provider,omitempty" example:"ENRA"`
	InsurancePolicyNumber string  `json:"insurance_policy_number,omitempty" example:"POL-99812"`
	FrameSize             string  `json:"frame_size,omitempty" example:"L"`
	TireSize              string  `json:"tire_size,omitempty" example:"29 Zoll"`
	SuspensionTravel      string  `json:"suspension_travel,omitempty" example:"150mm"`
	BrakeType             string  `json:"brake_type,omitempty" example:"Scheibenbremse"`
	ImageURL              string  `json:"image_url,omitempty"`
}

type UpdateBikeRequest struct {
	Make                  *string  `json:"make,omitempty"`
	Model                 *string  `json:"model,omitempty"`
	Color                 *string  `json:"color,omitempty"`
	Description           *string  `json:"description,omitempty"`
	DistinctiveFeatures   *string  `json:"distinctive_features,omitempty"`
	Condition             *string  `json:"condition,omitempty"`
	PurchaseDate          *string  `json:"purchase_date,omitempty"`
	PurchasePrice         *float64 `json:"purchase_price,omitempty"`
	StorageLocation       *string  `json:"storage_location,omitempty"`
	InsuranceProvider     *string  `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber *string  `json:"insurance_policy_number,omitempty"`
	FrameSize             *string  `json:"frame_size,omitempty"`
	TireSize              *string  `json:"tire_size,omitempty"`
	SuspensionTravel      *string  `json:"suspension_travel,omitempty"`
	BrakeType             *string  `json:"brake_type,omitempty"`
	ImageURL              *string  `json:"image_url,omitempty"`
}

type ListBikesResponse struct {
	Bikes []*domain.Bike `json:"bikes"`
	Count int            `json:"count"`
}

type SellBikeRequest struct {
	Price float64 `json:"price" binding:"required" example:"1800.00"`
}

func NewBikeHandler(
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Fahrrad registrieren
// @Description Legt ein neues Fahrrad im Register an, Status SAFE
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Fahrraddaten"
// @Success 201 {object} domain.Bike "Fahrrad registriert"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 409 {object} errorResponse "Rahmennummer bereits registriert"
// @Router /bikes [post]
func (h *BikeHandler) RegisterBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ownerID := uuid.Nil
	if req.OwnerID != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid owner ID")
			return
		}
		ownerID = parsed
	}

	bike := &domain.Bike{
		OwnerID:               ownerID,
		FrameNumber:           req.FrameNumber,
		Make:                  req.Make,
		Model:                 req.Model,
		Color:                 req.Color,
		Description:           req.Description,
		DistinctiveFeatures:   req.DistinctiveFeatures,
		Condition:             domain.BikeCondition(req.Condition),
		PurchaseDate:          req.PurchaseDate,
		PurchasePrice:         req.PurchasePrice,
		StorageLocation:       req.StorageLocation,
		InsuranceProvider:     req.InsuranceProvider,
		InsurancePolicyNumber: req.InsurancePolicyNumber,
		FrameSize:             req.FrameSize,
		TireSize:              req.TireSize,
		SuspensionTravel:      req.SuspensionTravel,
		BrakeType:             req.BrakeType,
		ImageURL:              req.ImageURL,
	}

	createdBike, err := h.bikeService.RegisterBike(c.Request.Context(), bike)
	if err != nil {
		h.logger.Error("Failed to register bike", map[string]interface{}{
			"error":        err.Error(),
			"frame_number": req.FrameNumber,
		})
		newErrorResponse(c, statusFromError(err), "Failed to register bike")
		return
	}

	c.JSON(http.StatusCreated, createdBike)
}

// @Summary Fahrrad abrufen
// @Description Liefert ein Fahrrad per ID
// @Tags bikes
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Success 200 {object} domain.Bike "Fahrrad gefunden"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
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

	c.JSON(http.StatusOK, bike)
}

// @Summary Fahrräder auflisten
// @Description Alle registrierten Fahrräder, optional gefiltert per owner_id
// @Tags bikes
// @Produce json
// @Param owner_id query string false "Eigentümer-ID"
// @Success 200 {object} ListBikesResponse "Fahrradliste"
// @Failure 500 {object} errorResponse "Interner Fehler"
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var (
		bikes []*domain.Bike
		err   error
	)
	if ownerID := c.Query("owner_id"); ownerID != "" {
		bikes, err = h.bikeService.GetBikesByOwnerID(c.Request.Context(), ownerID)
	} else {
		bikes, err = h.bikeService.ListBikes(c.Request.Context())
	}
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list bikes")
		return
	}

	c.JSON(http.StatusOK, ListBikesResponse{Bikes: bikes, Count: len(bikes)})
}

// @Summary Meldbare Fahrräder
// @Description Fahrräder mit Status SAFE oder FOR_SALE, Kandidaten für eine Diebstahlanzeige
// @Tags bikes
// @Produce json
// @Success 200 {object} ListBikesResponse "Auswählbare Fahrräder"
// @Failure 500 {object} errorResponse "Interner Fehler"
// @Router /bikes/selectable [get]
func (h *BikeHandler) ListSelectable(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikeService.ListSelectable(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list bikes")
		return
	}

	c.JSON(http.StatusOK, ListBikesResponse{Bikes: bikes, Count: len(bikes)})
}

// @Summary Marktplatz
// @Description Fahrräder mit Status FOR_SALE
// @Tags bikes
// @Produce json
// @Success 200 {object} ListBikesResponse "Inserierte Fahrräder"
// @Failure 500 {object} errorResponse "Interner Fehler"
// @Router /bikes/marketplace [get]
func (h *BikeHandler) ListMarketplace(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikeService.ListForSale(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list bikes")
		return
	}

	c.JSON(http.StatusOK, ListBikesResponse{Bikes: bikes, Count: len(bikes)})
}

// @Summary Fahrrad aktualisieren
// @Description Beschreibende Felder ändern. Rahmennummer und Status sind über diesen Weg unveränderlich
// @Tags bikes
// @Accept json
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Param request body UpdateBikeRequest true "Zu ändernde Felder"
// @Success 200 {object} domain.Bike "Fahrrad aktualisiert"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	existingBike, err := h.bikeService.GetBikeByID(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, http.StatusNotFound, "Bike not found")
		return
	}

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike := existingBike
	if req.Make != nil {
		bike.Make = *req.Make
	}
	if req.Model != nil {
		bike.Model = *req.Model
	}
	if req.Color != nil {
		bike.Color = *req.Color
	}
	if req.Description != nil {
		bike.Description = *req.Description
	}
	if req.DistinctiveFeatures != nil {
		bike.DistinctiveFeatures = *req.DistinctiveFeatures
	}
	if req.Condition != nil {
		bike.Condition = domain.BikeCondition(*req.Condition)
	}
	if req.PurchaseDate != nil {
		bike.PurchaseDate = *req.PurchaseDate
	}
	if req.PurchasePrice != nil {
		bike.PurchasePrice = *req.PurchasePrice
	}
	if req.StorageLocation != nil {
		bike.StorageLocation = *req.StorageLocation
	}
	if req.InsuranceProvider != nil {
		bike.InsuranceProvider = *req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != nil {
		bike.InsurancePolicyNumber = *req.InsurancePolicyNumber
	}
	if req.FrameSize != nil {
		bike.FrameSize = *req.FrameSize
	}
	if req.TireSize != nil {
		bike.TireSize = *req.TireSize
	}
	if req.SuspensionTravel != nil {
		bike.SuspensionTravel = *req.SuspensionTravel
	}
	if req.BrakeType != nil {
		bike.BrakeType = *req.BrakeType
	}
	if req.ImageURL != nil {
		bike.ImageURL = *req.ImageURL
	}

	updatedBike, err := h.bikeService.UpdateBike(c.Request.Context(), bike)
	if err != nil {
		h.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Update failed")
		return
	}

	c.JSON(http.StatusOK, updatedBike)
}

// @Summary Fahrrad löschen
// @Description Entfernt ein Fahrrad aus dem Register
// @Tags bikes
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Success 200 {object} successResponse "Fahrrad gelöscht"
// @Failure 404 {object} errorResponse "Fahrrad nicht gefunden"
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	if err := h.bikeService.DeleteBike(c.Request.Context(), bikeID); err != nil {
		h.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike deleted successfully", nil)
}

// @Summary Fahrrad inserieren
// @Description Setzt ein Fahrrad von SAFE auf FOR_SALE und hinterlegt den Angebotspreis
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Param request body SellBikeRequest true "Angebotspreis"
// @Success 200 {object} domain.Bike "Fahrrad inseriert"
// @Failure 400 {object} errorResponse "Ungültige Anfrage"
// @Failure 409 {object} errorResponse "Statuskonflikt"
// @Router /bikes/{id}/sell [post]
func (h *BikeHandler) SellBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	var req SellBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike, err := h.bikeService.MarkForSale(c.Request.Context(), bikeID, req.Price)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to list bike for sale")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Verkauf abschließen
// @Description Setzt ein inseriertes Fahrrad von FOR_SALE auf SOLD
// @Tags marketplace
// @Produce json
// @Param id path string true "Fahrrad-ID"
// @Success 200 {object} domain.Bike "Verkauf abgeschlossen"
// @Failure 409 {object} errorResponse "Statuskonflikt"
// @Router /bikes/{id}/sold [post]
func (h *BikeHandler) MarkSold(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	bike, err := h.bikeService.MarkSold(c.Request.Context(), bikeID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Failed to mark bike sold")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Statushistorie
// @Description Chronologisches Protokoll aller Statuswechsel im Register
// @Tags bikes
// @Produce json
// @Success 200 {array} domain.StatusChange "Statuswechsel"
// @Router /bikes/status-changes [get]
func (h *BikeHandler) StatusChanges(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, h.bikeService.StatusChanges(c.Request.Context()))
}
