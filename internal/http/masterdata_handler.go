package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/http/middleware"
	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/service"
)

type supplierRequest struct {
	FriendlyName        string `json:"friendly_name" binding:"required"`
	LegalName           string `json:"legal_name" binding:"required"`
	PDFInvoiceName      string `json:"pdf_invoice_name"`
	PrimaryContactName  string `json:"primary_contact_name"`
	PrimaryContactEmail string `json:"primary_contact_email"`
}

func (h *Handler) listSuppliers(c *gin.Context) {
	suppliers, err := h.masterdata.ListSuppliers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *Handler) getSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	supplier, err := h.masterdata.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) createSupplier(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.masterdata.CreateSupplier(c.Request.Context(), model.Supplier{
		FriendlyName:        req.FriendlyName,
		LegalName:           req.LegalName,
		PDFInvoiceName:      req.PDFInvoiceName,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.masterdata.UpdateSupplier(c.Request.Context(), model.Supplier{
		ID:                  id,
		FriendlyName:        req.FriendlyName,
		LegalName:           req.LegalName,
		PDFInvoiceName:      req.PDFInvoiceName,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactEmail: req.PrimaryContactEmail,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.masterdata.DeleteSupplier(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type locationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	AirportName string  `json:"airport_name"`
	ICAOCode    string  `json:"icao_code" binding:"required"`
	IATACode    string  `json:"iata_code" binding:"required"`
	VATRate     float64 `json:"vat_rate"`
}

func (h *Handler) listLocations(c *gin.Context) {
	locations, err := h.masterdata.ListLocations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *Handler) getLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	location, err := h.masterdata.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *Handler) createLocation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.masterdata.CreateLocation(c.Request.Context(), model.Location{
		Name:        req.Name,
		Country:     req.Country,
		AirportName: req.AirportName,
		ICAOCode:    req.ICAOCode,
		IATACode:    req.IATACode,
		VATRate:     req.VATRate,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *Handler) updateLocation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.masterdata.UpdateLocation(c.Request.Context(), model.Location{
		ID:          id,
		Name:        req.Name,
		Country:     req.Country,
		AirportName: req.AirportName,
		ICAOCode:    req.ICAOCode,
		IATACode:    req.IATACode,
		VATRate:     req.VATRate,
	}, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteLocation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.masterdata.DeleteLocation(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type contractRequest struct {
	SupplierID           string `json:"supplier_id" binding:"required"`
	LocationID           string `json:"location_id" binding:"required"`
	ContractRef          string `json:"contract_ref" binding:"required"`
	StartDate            string `json:"start_date" binding:"required"`
	EndDate              string `json:"end_date" binding:"required"`
	PriceChangeFrequency string `json:"price_change_frequency" binding:"required"`
	SplitType            string `json:"split_type"`
	SplitValue           string `json:"split_value"`
	Status               string `json:"status"`
}

func (r contractRequest) toModel() (model.Contract, error) {
	supplierID, err := uuid.Parse(r.SupplierID)
	if err != nil {
		return model.Contract{}, service.ErrInvalidInput
	}
	locationID, err := uuid.Parse(r.LocationID)
	if err != nil {
		return model.Contract{}, service.ErrInvalidInput
	}
	start, err := parseDate(r.StartDate)
	if err != nil {
		return model.Contract{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return model.Contract{}, err
	}

	splitType := model.ContractSplitType(r.SplitType)
	if r.SplitType == "" {
		splitType = model.SplitTypePercentage
	}

	return model.Contract{
		SupplierID:           supplierID,
		LocationID:           locationID,
		ContractRef:          r.ContractRef,
		StartDate:            start,
		EndDate:              end,
		PriceChangeFrequency: model.PriceChangeFrequency(r.PriceChangeFrequency),
		SplitType:            splitType,
		SplitValue:           r.SplitValue,
		Status:               model.ContractStatus(r.Status),
	}, nil
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.masterdata.ListContracts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	contract, err := h.masterdata.GetContract(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.masterdata.CreateContract(c.Request.Context(), contract, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	contract.ID = id

	if err := h.masterdata.UpdateContract(c.Request.Context(), contract, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.masterdata.DeleteContract(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
