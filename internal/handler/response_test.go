package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{domain.ErrVillageAccessDenied, http.StatusForbidden, "VILLAGE_ACCESS_DENIED"},
		{domain.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{domain.ErrDuplicateRate, http.StatusConflict, "DUPLICATE_RATE"},
		{domain.ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED"},
		{domain.ErrInvalidSlabRange, http.StatusBadRequest, "INVALID_SLAB_RANGE"},
		{domain.ErrInvalidTaxKey, http.StatusBadRequest, "INVALID_TAX_KEY"},
		{domain.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{domain.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{domain.ErrStorageDisabled, http.StatusServiceUnavailable, "STORAGE_DISABLED"},
		{fmt.Errorf("propertyRepo.Create: %w", domain.ErrDuplicatePropertyNo), http.StatusConflict, "DUPLICATE_PROPERTY_NO"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}
