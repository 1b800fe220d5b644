package handler

import (
	"github.com/gin-gonic/gin"

	"grampanchayat/internal/service"
)

// StatsHandler handles dashboard stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Portal handles GET /api/v1/dashboard/superadmin/stats
func (h *StatsHandler) Portal(c *gin.Context) {
	stats, err := h.statsService.GetPortalStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// Village handles GET /api/v1/villages/:villageId/stats
func (h *StatsHandler) Village(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	stats, err := h.statsService.GetVillageStats(c.Request.Context(), villageID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
