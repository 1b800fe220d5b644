package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/service"
)

// VillageHandler handles village endpoints.
type VillageHandler struct {
	villageService service.VillageService
}

// NewVillageHandler creates a new VillageHandler.
func NewVillageHandler(villageService service.VillageService) *VillageHandler {
	return &VillageHandler{villageService: villageService}
}

// Create handles POST /api/v1/villages
func (h *VillageHandler) Create(c *gin.Context) {
	var input service.CreateVillageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	village, err := h.villageService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, village)
}

// List handles GET /api/v1/villages. Super admins get every village, others
// the villages assigned to them.
func (h *VillageHandler) List(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	villages, err := h.villageService.ListForSession(c.Request.Context(), claims)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, villages)
}

// GetByID handles GET /api/v1/villages/:villageId
func (h *VillageHandler) GetByID(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	village, err := h.villageService.GetByID(c.Request.Context(), villageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, village)
}

// Update handles PUT /api/v1/villages/:villageId
func (h *VillageHandler) Update(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	var input service.UpdateVillageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	village, err := h.villageService.Update(c.Request.Context(), villageID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, village)
}

// Delete handles DELETE /api/v1/villages/:villageId
func (h *VillageHandler) Delete(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	if err := h.villageService.Delete(c.Request.Context(), villageID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "village deleted"})
}
