package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/config"
	"grampanchayat/internal/domain"
	"grampanchayat/internal/handler"
	"grampanchayat/internal/service"
	"grampanchayat/mocks"
)

func newAuthHandler() (*handler.AuthHandler, *mocks.MockAuthService) {
	mockSvc := new(mocks.MockAuthService)
	cfg := config.JWTConfig{CookieName: "gp_token"}
	return handler.NewAuthHandler(mockSvc, cfg), mockSvc
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	h, mockSvc := newAuthHandler()
	session := &service.Session{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &domain.User{ID: uuid.New(), Email: "sevak@test.com"},
	}
	mockSvc.On("Login", mock.Anything, service.LoginInput{Email: "sevak@test.com", Password: "password123"}).Return(session, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "sevak@test.com", "password": "password123",
	}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, "gp_token=signed-token"))
	assert.Contains(t, cookie, "HttpOnly")
	assert.True(t, decode(t, w).Success)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	h, mockSvc := newAuthHandler()

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "not-an-email"}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockSvc := newAuthHandler()
	mockSvc.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "sevak@test.com", "password": "wrong",
	}, nil)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, _ := newAuthHandler()

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/logout", nil, nil)
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestAuthHandler_Me(t *testing.T) {
	h, _ := newAuthHandler()
	villageID := uuid.New()

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", nil, nil)
	setClaims(c, &service.Claims{UserID: uuid.New(), Role: domain.RoleAdmin, VillageIDs: []uuid.UUID{villageID}})
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "ADMIN", data["role"])
	assert.Equal(t, []interface{}{villageID.String()}, data["village_ids"])
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	h, _ := newAuthHandler()

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", nil, nil)
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
