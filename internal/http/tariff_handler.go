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

type customPriceRequest struct {
	Description string `json:"description" binding:"required"`
	Price       string `json:"price" binding:"required"`
}

type createTariffRequest struct {
	SupplierID            string               `json:"supplier_id" binding:"required"`
	LocationID            string               `json:"location_id" binding:"required"`
	ReplacementSupplierID string               `json:"replacement_supplier_id"`
	BasePrice             string               `json:"base_price" binding:"required"`
	Differential          string               `json:"differential"`
	Markup                string               `json:"markup"`
	StartDate             string               `json:"start_date"`
	EndDate               string               `json:"end_date"`
	PerLiterPrices        []customPriceRequest `json:"per_liter_prices"`
	PerUpliftmentPrices   []customPriceRequest `json:"per_upliftment_prices"`
}

type customPriceResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type tariffResponse struct {
	ID                    string                `json:"id"`
	SupplierID            string                `json:"supplier_id"`
	LocationID            string                `json:"location_id"`
	ReplacementSupplierID *string               `json:"replacement_supplier_id,omitempty"`
	BasePrice             string                `json:"base_price"`
	Differential          string                `json:"differential"`
	Markup                string                `json:"markup"`
	TotalPerLiter         string                `json:"total_per_liter"`
	StartDate             string                `json:"start_date"`
	EndDate               string                `json:"end_date"`
	IsSpotTariff          bool                  `json:"is_spot_tariff"`
	ContractRef           *string               `json:"contract_ref,omitempty"`
	PerLiterPrices        []customPriceResponse `json:"per_liter_prices,omitempty"`
	PerUpliftmentPrices   []customPriceResponse `json:"per_upliftment_prices,omitempty"`
	Status                string                `json:"status"`
}

func toTariffResponse(tariff model.Tariff, total string) tariffResponse {
	resp := tariffResponse{
		ID:            tariff.ID.String(),
		SupplierID:    tariff.SupplierID.String(),
		LocationID:    tariff.LocationID.String(),
		BasePrice:     tariff.BasePrice.StringFixed(2),
		Differential:  tariff.Differential.StringFixed(2),
		Markup:        tariff.Markup.StringFixed(2),
		TotalPerLiter: total,
		StartDate:     tariff.StartDate.Format("2006-01-02"),
		EndDate:       tariff.EndDate.Format("2006-01-02"),
		IsSpotTariff:  tariff.IsSpotTariff,
		ContractRef:   tariff.ContractRef,
		Status:        string(tariff.Status),
	}
	if tariff.ReplacementSupplierID != nil {
		id := tariff.ReplacementSupplierID.String()
		resp.ReplacementSupplierID = &id
	}
	for _, item := range tariff.PerLiterPrices {
		resp.PerLiterPrices = append(resp.PerLiterPrices, customPriceResponse{
			ID:          item.ID.String(),
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
		})
	}
	for _, item := range tariff.PerUpliftmentPrices {
		resp.PerUpliftmentPrices = append(resp.PerUpliftmentPrices, customPriceResponse{
			ID:          item.ID.String(),
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
		})
	}
	return resp
}

func (h *Handler) createTariff(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	input := service.CreateTariffInput{
		SupplierID:   supplierID,
		LocationID:   locationID,
		BasePrice:    req.BasePrice,
		Differential: req.Differential,
		Markup:       req.Markup,
		Principal:    principal,
	}
	if req.ReplacementSupplierID != "" {
		replacementID, err := uuid.Parse(strings.TrimSpace(req.ReplacementSupplierID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid replacement_supplier_id"})
			return
		}
		input.ReplacementSupplierID = &replacementID
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		input.EndDate = &end
	}
	for _, item := range req.PerLiterPrices {
		input.PerLiterPrices = append(input.PerLiterPrices, service.CustomPriceInput{
			Description: item.Description,
			Price:       item.Price,
		})
	}
	for _, item := range req.PerUpliftmentPrices {
		input.PerUpliftmentPrices = append(input.PerUpliftmentPrices, service.CustomPriceInput{
			Description: item.Description,
			Price:       item.Price,
		})
	}

	result, err := h.tariffs.CreateTariff(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTariffResponse(result.Tariff, result.TotalPerLiter.StringFixed(2)))
}

func (h *Handler) listTariffs(c *gin.Context) {
	tariffs, err := h.tariffs.ListTariffs(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]tariffResponse, 0, len(tariffs))
	for _, tariff := range tariffs {
		total := tariff.BasePrice.Add(tariff.Differential).Add(tariff.Markup)
		responses = append(responses, toTariffResponse(tariff, total.StringFixed(2)))
	}
	c.JSON(http.StatusOK, gin.H{"tariffs": responses})
}

func (h *Handler) getTariff(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	tariff, err := h.tariffs.GetTariff(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	total := tariff.BasePrice.Add(tariff.Differential).Add(tariff.Markup)
	c.JSON(http.StatusOK, toTariffResponse(*tariff, total.StringFixed(2)))
}

func (h *Handler) exportTariffPDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.exports.ExportTariffPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
