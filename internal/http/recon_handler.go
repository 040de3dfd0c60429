package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/http/middleware"
	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/repository"
	"github.com/skyops/fuelrecon/internal/service"
)

func (h *Handler) recordFilterFromQuery(c *gin.Context) (repository.RecordFilter, bool) {
	var filter repository.RecordFilter

	if raw := strings.TrimSpace(c.Query("supplier_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier_id"})
			return filter, false
		}
		filter.SupplierID = &id
	}
	if raw := strings.TrimSpace(c.Query("location_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
			return filter, false
		}
		filter.LocationID = &id
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := model.RecordStatus(strings.ToUpper(raw))
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
			return filter, false
		}
		filter.DateFrom = &from
	}
	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
			return filter, false
		}
		filter.DateTo = &to
	}
	return filter, true
}

func (h *Handler) listRecords(c *gin.Context) {
	filter, ok := h.recordFilterFromQuery(c)
	if !ok {
		return
	}
	records, err := h.recon.ListRecords(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *Handler) getRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	record, err := h.recon.GetRecord(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) recordsSummary(c *gin.Context) {
	summary, err := h.recon.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type registerRecordRequest struct {
	FlightDate           string  `json:"flight_date" binding:"required"`
	FlightNumber         string  `json:"flight_number" binding:"required"`
	AircraftRegistration string  `json:"aircraft_registration" binding:"required"`
	SupplierID           string  `json:"supplier_id" binding:"required"`
	LocationID           string  `json:"location_id" binding:"required"`
	MovementVolumeL      float64 `json:"movement_volume_l"`
	IFSVolumeL           float64 `json:"ifs_volume_l"`
	FlightMatch          bool    `json:"flight_match"`
	DateMatch            bool    `json:"date_match"`
	AircraftMatch        bool    `json:"aircraft_match"`
}

func (h *Handler) registerRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req registerRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flightDate, err := parseDate(req.FlightDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight_date"})
		return
	}
	supplierID, err := uuid.Parse(strings.TrimSpace(req.SupplierID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier_id"})
		return
	}
	locationID, err := uuid.Parse(strings.TrimSpace(req.LocationID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
		return
	}

	record, err := h.recon.RegisterRecord(c.Request.Context(), service.RegisterRecordInput{
		Record: model.ReconRecord{
			FlightDate:           flightDate,
			FlightNumber:         req.FlightNumber,
			AircraftRegistration: req.AircraftRegistration,
			SupplierID:           supplierID,
			LocationID:           locationID,
			MovementVolumeL:      req.MovementVolumeL,
			IFSVolumeL:           req.IFSVolumeL,
			FlightMatch:          req.FlightMatch,
			DateMatch:            req.DateMatch,
			AircraftMatch:        req.AircraftMatch,
		},
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) reconcileRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.recon.MarkRecordReconciled(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type raiseQueryRequest struct {
	QueryType   string `json:"query_type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Assignee    string `json:"assignee"`
}

func (h *Handler) raiseQuery(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req raiseQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, err := h.recon.RaiseQuery(c.Request.Context(), service.RaiseQueryInput{
		RecordID:    id,
		QueryType:   model.QueryType(strings.ToUpper(strings.TrimSpace(req.QueryType))),
		Description: req.Description,
		Assignee:    req.Assignee,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, query)
}

func (h *Handler) listQueries(c *gin.Context) {
	var filter repository.QueryFilter
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := model.QueryStatus(strings.ToUpper(raw))
		filter.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("query_type")); raw != "" {
		queryType := model.QueryType(strings.ToUpper(raw))
		filter.QueryType = &queryType
	}
	if raw := strings.TrimSpace(c.Query("assignee")); raw != "" {
		filter.Assignee = &raw
	}

	queries, err := h.recon.ListQueries(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

type updateQueryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateQueryStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateQueryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.QueryStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := h.recon.UpdateQueryStatus(c.Request.Context(), id, status, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportRecords(c *gin.Context) {
	filter, ok := h.recordFilterFromQuery(c)
	if !ok {
		return
	}

	result, err := h.exports.ExportRecords(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
