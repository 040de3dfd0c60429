package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/http/middleware"
	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/service"
)

type registerUploadRequest struct {
	Source      string `json:"source" binding:"required"`
	ReportType  string `json:"report_type" binding:"required"`
	SupplierID  string `json:"supplier_id"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	RecordCount int    `json:"record_count"`
}

func (h *Handler) registerUpload(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req registerUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.PeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_start"})
		return
	}
	end, err := parseDate(req.PeriodEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_end"})
		return
	}

	upload := model.Upload{
		Source:      model.UploadSource(strings.ToUpper(strings.TrimSpace(req.Source))),
		ReportType:  req.ReportType,
		PeriodStart: start,
		PeriodEnd:   end,
		Filename:    req.Filename,
		RecordCount: req.RecordCount,
	}
	if raw := strings.TrimSpace(req.SupplierID); raw != "" {
		supplierID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier_id"})
			return
		}
		upload.SupplierID = &supplierID
	}

	saved, err := h.uploads.RegisterUpload(c.Request.Context(), service.RegisterUploadInput{
		Upload:    upload,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) listUploads(c *gin.Context) {
	var source *model.UploadSource
	if raw := strings.TrimSpace(c.Query("source")); raw != "" {
		value := model.UploadSource(strings.ToUpper(raw))
		source = &value
	}

	uploads, err := h.uploads.ListUploads(c.Request.Context(), source)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}
