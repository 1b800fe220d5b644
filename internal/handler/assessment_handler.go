package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/service"
)

// AssessmentHandler handles property assessment and register endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
	registerService   service.RegisterService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService service.AssessmentService, registerService service.RegisterService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService, registerService: registerService}
}

// Property handles GET /api/v1/villages/:villageId/properties/:propertyId/assessment
func (h *AssessmentHandler) Property(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId", "property")
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	a, err := h.assessmentService.AssessProperty(c.Request.Context(), villageID, propertyID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, a)
}

// Village handles GET /api/v1/villages/:villageId/assessment
func (h *AssessmentHandler) Village(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	va, err := h.assessmentService.AssessVillage(c.Request.Context(), villageID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, va)
}

// Register handles GET /api/v1/villages/:villageId/assessment-register
func (h *AssessmentHandler) Register(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	out, err := h.registerService.Render(c.Request.Context(), villageID, asOf, c.DefaultQuery("format", service.FormatCSV))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Body)
}

// ArchiveRegister handles POST /api/v1/villages/:villageId/assessment-register/archive
func (h *AssessmentHandler) ArchiveRegister(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	out, err := h.registerService.Archive(c.Request.Context(), villageID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}
