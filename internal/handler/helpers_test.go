package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"grampanchayat/internal/handler"
	"grampanchayat/internal/middleware"
	"grampanchayat/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, path string, body interface{}, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func setClaims(c *gin.Context, claims *service.Claims) {
	c.Set(middleware.ContextKeyUserID, claims.UserID)
	c.Set(middleware.ContextKeyRole, string(claims.Role))
	c.Set(middleware.ContextKeyClaims, claims)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
