package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// Update handles PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "user deleted"})
}

// ListVillages handles GET /api/v1/users/:id/villages
func (h *UserHandler) ListVillages(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	villages, err := h.userService.ListVillages(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, villages)
}

// AssignVillage handles POST /api/v1/users/:id/villages/:villageId
func (h *UserHandler) AssignVillage(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	if err := h.userService.AssignVillage(c.Request.Context(), userID, villageID); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"user_id": userID, "village_id": villageID})
}

// RemoveVillage handles DELETE /api/v1/users/:id/villages/:villageId
func (h *UserHandler) RemoveVillage(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	if err := h.userService.RemoveVillage(c.Request.Context(), userID, villageID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "village access removed"})
}

// ListByVillage handles GET /api/v1/villages/:villageId/users
func (h *UserHandler) ListByVillage(c *gin.Context) {
	villageID, ok := parseIDParam(c, "villageId", "village")
	if !ok {
		return
	}

	users, err := h.userService.ListByVillage(c.Request.Context(), villageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, users)
}
