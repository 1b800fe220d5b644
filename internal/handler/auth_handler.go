package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/config"
	"grampanchayat/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cfg}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	h.setCookie(c, session.Token, maxAge)
	RespondOK(c, session)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	RespondOK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}
	RespondOK(c, gin.H{
		"user_id":     claims.UserID,
		"name":        claims.Name,
		"email":       claims.Email,
		"role":        claims.Role,
		"village_ids": claims.VillageIDs,
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, value, maxAge, "/", "", h.cookie.CookieSecure, true)
}
