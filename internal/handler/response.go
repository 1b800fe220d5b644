package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/middleware"
	"grampanchayat/internal/service"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrVillageInactive):
		return http.StatusForbidden, "VILLAGE_INACTIVE", "village is inactive"
	case errors.Is(err, domain.ErrVillageAccessDenied):
		return http.StatusForbidden, "VILLAGE_ACCESS_DENIED", "no access to this village"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrDuplicateVillageCode):
		return http.StatusConflict, "DUPLICATE_VILLAGE_CODE", "village code already exists"
	case errors.Is(err, domain.ErrDuplicatePropertyNo):
		return http.StatusConflict, "DUPLICATE_PROPERTY_NO", "property number already exists in this village"
	case errors.Is(err, domain.ErrDuplicateRate):
		return http.StatusConflict, "DUPLICATE_RATE", "a rate with the same key and effective date already exists"
	case errors.Is(err, domain.ErrAlreadyAssigned):
		return http.StatusConflict, "ALREADY_ASSIGNED", "user already has access to this village"
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest, "INVALID_RATE", "rates must be non-negative with a non-empty key"
	case errors.Is(err, domain.ErrInvalidSlabRange):
		return http.StatusBadRequest, "INVALID_SLAB_RANGE", "upper bound must not be below lower bound"
	case errors.Is(err, domain.ErrInvalidTaxKey):
		return http.StatusBadRequest, "INVALID_TAX_KEY", "tax key must be one of HEALTH, ELECTRICITY_SUPPLY, DIVABATTI"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "role must be one of SUPER_ADMIN, ADMIN, USER"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "status must be ACTIVE or INACTIVE"
	case errors.Is(err, domain.ErrInvalidConstruction):
		return http.StatusBadRequest, "INVALID_CONSTRUCTION", "construction lines need usage and construction types, non-negative dimensions and a year of 0 or at least 1900"
	case errors.Is(err, domain.ErrInvalidAadhar):
		return http.StatusBadRequest, "INVALID_AADHAR", "aadhar number must be 12 digits"
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE", "invalid date, expected YYYY-MM-DD"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "format must be csv or xlsx"
	case errors.Is(err, domain.ErrStorageDisabled):
		return http.StatusServiceUnavailable, "STORAGE_DISABLED", "register archiving is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// parseIDParam parses a UUID path parameter. Returns false if invalid (error
// response already written).
func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseAsOf reads the optional as_of query parameter.
func parseAsOf(c *gin.Context) (*time.Time, bool) {
	asOf, err := service.ParseOptionalDate(c.Query("as_of"))
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return asOf, true
}

// extractClaims returns the session claims. Returns false if missing (error
// response already written).
func extractClaims(c *gin.Context) (*service.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return nil, false
	}
	return claims, true
}
