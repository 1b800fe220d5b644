package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
)

// RateHandler handles the global rate catalog endpoints.
type RateHandler struct {
	rateService service.RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// ListConstructionLand handles GET /api/v1/global-rates/construction-land
func (h *RateHandler) ListConstructionLand(c *gin.Context) {
	respondList(c, func(ctx context.Context) (interface{}, error) { return h.rateService.ListConstructionLandRates(ctx) })
}

// CreateConstructionLand handles POST /api/v1/global-rates/construction-land
func (h *RateHandler) CreateConstructionLand(c *gin.Context) {
	createRate(c, h.rateService.CreateConstructionLandRate)
}

// UpdateConstructionLand handles PUT /api/v1/global-rates/construction-land/:id
func (h *RateHandler) UpdateConstructionLand(c *gin.Context) {
	updateRate(c, h.rateService.UpdateConstructionLandRate)
}

// DeleteConstructionLand handles DELETE /api/v1/global-rates/construction-land/:id
func (h *RateHandler) DeleteConstructionLand(c *gin.Context) {
	deleteRate(c, h.rateService.DeleteConstructionLandRate)
}

// ListDepreciation handles GET /api/v1/global-rates/depreciation
func (h *RateHandler) ListDepreciation(c *gin.Context) {
	respondList(c, func(ctx context.Context) (interface{}, error) { return h.rateService.ListDepreciationRates(ctx) })
}

// CreateDepreciation handles POST /api/v1/global-rates/depreciation
func (h *RateHandler) CreateDepreciation(c *gin.Context) {
	createRate(c, h.rateService.CreateDepreciationRate)
}

// UpdateDepreciation handles PUT /api/v1/global-rates/depreciation/:id
func (h *RateHandler) UpdateDepreciation(c *gin.Context) {
	updateRate(c, h.rateService.UpdateDepreciationRate)
}

// DeleteDepreciation handles DELETE /api/v1/global-rates/depreciation/:id
func (h *RateHandler) DeleteDepreciation(c *gin.Context) {
	deleteRate(c, h.rateService.DeleteDepreciationRate)
}

// ListUsageFactors handles GET /api/v1/global-rates/usage-factor
func (h *RateHandler) ListUsageFactors(c *gin.Context) {
	respondList(c, func(ctx context.Context) (interface{}, error) { return h.rateService.ListUsageFactors(ctx) })
}

// CreateUsageFactor handles POST /api/v1/global-rates/usage-factor
func (h *RateHandler) CreateUsageFactor(c *gin.Context) {
	createRate(c, h.rateService.CreateUsageFactor)
}

// UpdateUsageFactor handles PUT /api/v1/global-rates/usage-factor/:id
func (h *RateHandler) UpdateUsageFactor(c *gin.Context) {
	updateRate(c, h.rateService.UpdateUsageFactor)
}

// DeleteUsageFactor handles DELETE /api/v1/global-rates/usage-factor/:id
func (h *RateHandler) DeleteUsageFactor(c *gin.Context) {
	deleteRate(c, h.rateService.DeleteUsageFactor)
}

// ListWaterSupply handles GET /api/v1/global-rates/water-supply
func (h *RateHandler) ListWaterSupply(c *gin.Context) {
	respondList(c, func(ctx context.Context) (interface{}, error) { return h.rateService.ListWaterSupplyRates(ctx) })
}

// CreateWaterSupply handles POST /api/v1/global-rates/water-supply
func (h *RateHandler) CreateWaterSupply(c *gin.Context) {
	createRate(c, h.rateService.CreateWaterSupplyRate)
}

// UpdateWaterSupply handles PUT /api/v1/global-rates/water-supply/:id
func (h *RateHandler) UpdateWaterSupply(c *gin.Context) {
	updateRate(c, h.rateService.UpdateWaterSupplyRate)
}

// DeleteWaterSupply handles DELETE /api/v1/global-rates/water-supply/:id
func (h *RateHandler) DeleteWaterSupply(c *gin.Context) {
	deleteRate(c, h.rateService.DeleteWaterSupplyRate)
}

// ListSlabTax handles GET /api/v1/global-rates/slab-tax/:taxKey
func (h *RateHandler) ListSlabTax(c *gin.Context) {
	key := slabTaxKeyParam(c)
	respondList(c, func(ctx context.Context) (interface{}, error) { return h.rateService.ListSlabTaxRates(ctx, key) })
}

// CreateSlabTax handles POST /api/v1/global-rates/slab-tax/:taxKey
func (h *RateHandler) CreateSlabTax(c *gin.Context) {
	key := slabTaxKeyParam(c)
	createRate(c, func(ctx context.Context, in service.SlabTaxRateInput) (*domain.SlabTaxRate, error) {
		return h.rateService.CreateSlabTaxRate(ctx, key, in)
	})
}

// UpdateSlabTax handles PUT /api/v1/global-rates/slab-tax/:taxKey/:id
func (h *RateHandler) UpdateSlabTax(c *gin.Context) {
	key := slabTaxKeyParam(c)
	updateRate(c, func(ctx context.Context, id uuid.UUID, in service.SlabTaxRatePatch) (*domain.SlabTaxRate, error) {
		return h.rateService.UpdateSlabTaxRate(ctx, key, id, in)
	})
}

// DeleteSlabTax handles DELETE /api/v1/global-rates/slab-tax/:taxKey/:id
func (h *RateHandler) DeleteSlabTax(c *gin.Context) {
	key := slabTaxKeyParam(c)
	deleteRate(c, func(ctx context.Context, id uuid.UUID) error {
		return h.rateService.DeleteSlabTaxRate(ctx, key, id)
	})
}

// slabTaxKeyParam accepts the key in any case, with dashes for underscores.
func slabTaxKeyParam(c *gin.Context) domain.SlabTaxKey {
	raw := strings.ToUpper(strings.TrimSpace(c.Param("taxKey")))
	return domain.SlabTaxKey(strings.ReplaceAll(raw, "-", "_"))
}

func respondList(c *gin.Context, list func(ctx context.Context) (interface{}, error)) {
	rows, err := list(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

func createRate[In, Out any](c *gin.Context, create func(context.Context, In) (Out, error)) {
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rate, err := create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rate)
}

func updateRate[In, Out any](c *gin.Context, update func(context.Context, uuid.UUID, In) (Out, error)) {
	id, ok := parseIDParam(c, "id", "rate")
	if !ok {
		return
	}

	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rate, err := update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rate)
}

func deleteRate(c *gin.Context, del func(context.Context, uuid.UUID) error) {
	id, ok := parseIDParam(c, "id", "rate")
	if !ok {
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "rate deleted"})
}
