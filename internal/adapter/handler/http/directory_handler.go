package http

import (
	"net/http"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directory ports.JurisdictionDirectory
	ownerRepo ports.OwnerRepository
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

func NewDirectoryHandler(
	directory ports.JurisdictionDirectory,
	ownerRepo ports.OwnerRepository,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		ownerRepo: ownerRepo,
		logger:    logger,
		metrics:   metrics,
	}
}

// @Summary Bundesländer auflisten
// @Description Alle hinterlegten Onlinewachen der Bundesländer
// @Tags jurisdictions
// @Produce json
// @Success 200 {array} domain.JurisdictionEndpoint "Onlinewachen"
// @Router /jurisdictions [get]
func (h *DirectoryHandler) ListJurisdictions(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, h.directory.All())
}

// @Summary Onlinewache auflösen
// @Description Onlinewache eines Bundeslands per exaktem Namen
// @Tags jurisdictions
// @Produce json
// @Param region path string true "Bundesland" example:"Bayern"
// @Success 200 {object} domain.JurisdictionEndpoint "Onlinewache"
// @Failure 404 {object} errorResponse "Kein Online-Kanal für diese Region"
// @Router /jurisdictions/{region} [get]
func (h *DirectoryHandler) GetJurisdiction(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	region := c.Param("region")

	endpoint, ok := h.directory.Lookup(region)
	if !ok {
		h.logger.Warn("No online submission channel for region", map[string]interface{}{
			"region": region,
		})
		newErrorResponse(c, http.StatusNotFound, "No online channel for this region")
		return
	}

	c.JSON(http.StatusOK, endpoint)
}

// @Summary Eigentümerprofil
// @Description Hinterlegtes Eigentümerprofil für die Anzeigenerstellung
// @Tags profile
// @Produce json
// @Success 200 {object} domain.OwnerProfile "Profil"
// @Failure 500 {object} errorResponse "Profil nicht konfiguriert"
// @Router /profile [get]
func (h *DirectoryHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	owner, err := h.ownerRepo.GetOwner(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load owner profile", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Owner profile not configured")
		return
	}

	c.JSON(http.StatusOK, owner)
}
