package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/handler"
	"grampanchayat/internal/service"
	"grampanchayat/mocks"
)

func TestRateHandler_CreateConstructionLand(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)

	mockSvc.On("CreateConstructionLandRate", mock.Anything, mock.MatchedBy(func(in service.ConstructionLandRateInput) bool {
		return in.PropertyTypeMr == "RCC" && *in.ApprovedRate == 1.2
	})).Return(&domain.ConstructionLandRate{ID: uuid.New(), PropertyTypeMr: "RCC"}, nil)

	c, w := newTestContext(http.MethodPost, "/", map[string]interface{}{
		"property_type_mr":       "RCC",
		"construction_rate":      20000,
		"construction_land_rate": 0,
		"land_rate":              3000,
		"approved_rate":          1.2,
		"effective_from":         "2024-04-01",
	}, nil)
	h.CreateConstructionLand(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestRateHandler_CreateConstructionLand_MissingRate(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)

	c, w := newTestContext(http.MethodPost, "/", map[string]interface{}{
		"property_type_mr": "RCC",
		"effective_from":   "2024-04-01",
	}, nil)
	h.CreateConstructionLand(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateHandler_CreateUsageFactor_Duplicate(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)
	mockSvc.On("CreateUsageFactor", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateRate)

	c, w := newTestContext(http.MethodPost, "/", map[string]interface{}{
		"usage_type_mr": "Residential", "weightage": 1, "effective_from": "2024-04-01",
	}, nil)
	h.CreateUsageFactor(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRateHandler_SlabTaxKeyNormalized(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)
	mockSvc.On("ListSlabTaxRates", mock.Anything, domain.SlabTaxElectricitySupply).Return([]domain.SlabTaxRate{}, nil)

	c, w := newTestContext(http.MethodGet, "/", nil, gin.Params{{Key: "taxKey", Value: "electricity-supply"}})
	h.ListSlabTax(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestRateHandler_UpdateSlabTax(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)
	id := uuid.New()
	mockSvc.On("UpdateSlabTaxRate", mock.Anything, domain.SlabTaxHealth, id, mock.MatchedBy(func(in service.SlabTaxRatePatch) bool {
		return in.ClearSlabTo && in.Rate != nil && *in.Rate == 25
	})).Return(&domain.SlabTaxRate{ID: id, TaxKey: domain.SlabTaxHealth, Rate: 25}, nil)

	c, w := newTestContext(http.MethodPut, "/", map[string]interface{}{"rate": 25, "clear_slab_to": true},
		gin.Params{{Key: "taxKey", Value: "HEALTH"}, {Key: "id", Value: id.String()}})
	h.UpdateSlabTax(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestRateHandler_DeleteDepreciation_InvalidID(t *testing.T) {
	h := handler.NewRateHandler(new(mocks.MockRateService))

	c, w := newTestContext(http.MethodDelete, "/", nil, gin.Params{{Key: "id", Value: "123"}})
	h.DeleteDepreciation(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateHandler_ListSlabTax_UnknownKey(t *testing.T) {
	mockSvc := new(mocks.MockRateService)
	h := handler.NewRateHandler(mockSvc)
	mockSvc.On("ListSlabTaxRates", mock.Anything, domain.SlabTaxKey("GARBAGE")).Return(nil, domain.ErrInvalidTaxKey)

	c, w := newTestContext(http.MethodGet, "/", nil, gin.Params{{Key: "taxKey", Value: "garbage"}})
	h.ListSlabTax(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TAX_KEY", decode(t, w).Error.Code)
}
