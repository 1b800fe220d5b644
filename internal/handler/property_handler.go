package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/service"
)

// PropertyHandler handles village-scoped property endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create handles POST /api/v1/villages/:villageId/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	var input service.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), villageID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, property)
}

// List handles GET /api/v1/villages/:villageId/properties
func (h *PropertyHandler) List(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	properties, total, err := h.propertyService.List(c.Request.Context(), villageID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, properties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/villages/:villageId/properties/:propertyId
func (h *PropertyHandler) GetByID(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId", "property")
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), villageID, propertyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// Update handles PUT /api/v1/villages/:villageId/properties/:propertyId
func (h *PropertyHandler) Update(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId", "property")
	if !ok {
		return
	}

	var input service.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), villageID, propertyID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// Delete handles DELETE /api/v1/villages/:villageId/properties/:propertyId
func (h *PropertyHandler) Delete(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId", "property")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), villageID, propertyID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "property deleted"})
}
