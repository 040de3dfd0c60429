package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skyops/fuelrecon/internal/pricing"
	"github.com/skyops/fuelrecon/internal/service"
)

type Handler struct {
	masterdata *service.MasterDataService
	tariffs    *service.TariffService
	recon      *service.ReconService
	uploads    *service.UploadService
	exports    *service.ExportService
	log        zerolog.Logger
}

func NewHandler(
	masterdata *service.MasterDataService,
	tariffs *service.TariffService,
	recon *service.ReconService,
	uploads *service.UploadService,
	exports *service.ExportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		masterdata: masterdata,
		tariffs:    tariffs,
		recon:      recon,
		uploads:    uploads,
		exports:    exports,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/suppliers", h.listSuppliers)
	protected.GET("/suppliers/:id", h.getSupplier)
	protected.POST("/suppliers", h.createSupplier)
	protected.PUT("/suppliers/:id", h.updateSupplier)
	protected.DELETE("/suppliers/:id", h.deleteSupplier)

	protected.GET("/locations", h.listLocations)
	protected.GET("/locations/:id", h.getLocation)
	protected.POST("/locations", h.createLocation)
	protected.PUT("/locations/:id", h.updateLocation)
	protected.DELETE("/locations/:id", h.deleteLocation)

	protected.GET("/contracts", h.listContracts)
	protected.GET("/contracts/:id", h.getContract)
	protected.POST("/contracts", h.createContract)
	protected.PUT("/contracts/:id", h.updateContract)
	protected.DELETE("/contracts/:id", h.deleteContract)

	protected.GET("/tariffs", h.listTariffs)
	protected.GET("/tariffs/:id", h.getTariff)
	protected.POST("/tariffs", h.createTariff)
	protected.GET("/tariffs/:id/document", h.exportTariffPDF)

	protected.GET("/records", h.listRecords)
	protected.GET("/records/summary", h.recordsSummary)
	protected.GET("/records/:id", h.getRecord)
	protected.POST("/records", h.registerRecord)
	protected.POST("/records/:id/reconcile", h.reconcileRecord)
	protected.POST("/records/:id/queries", h.raiseQuery)
	protected.GET("/records/export", h.exportRecords)

	protected.GET("/queries", h.listQueries)
	protected.PATCH("/queries/:id/status", h.updateQueryStatus)

	protected.GET("/uploads", h.listUploads)
	protected.POST("/uploads", h.registerUpload)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrInvalidDateRange), errors.Is(err, pricing.ErrReplacementRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
