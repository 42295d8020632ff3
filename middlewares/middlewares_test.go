package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{
			"userId":      utils.CurrentUserID(c),
			"role":        utils.CurrentRole(c),
			"requestId":   utils.RequestID(c),
			"hasDeadline": hasDeadline,
		})
	})
	return r
}

func do(r *gin.Engine, header, value string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func bearer(t *testing.T, role string) string {
	tok, err := utils.GenerateToken("64b7f0c2a1b2c3d4e5f60718", role, secret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware(secret, utils.RoleAdmin))

	w, body := do(r, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	w, _ = do(r, "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = do(r, "Authorization", bearer(t, utils.RoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])

	w, body = do(r, "Authorization", bearer(t, utils.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", body["userId"])
	assert.Equal(t, utils.RoleAdmin, body["role"])
}

func TestAuthMiddlewareWithoutRoles(t *testing.T) {
	r := newEngine(AuthMiddleware(secret))

	w, body := do(r, "Authorization", bearer(t, utils.RoleUser))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, utils.RoleUser, body["role"])
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w, body := do(r, RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", body["requestId"])

	w, body = do(r, "", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), body["requestId"])
}

func TestRequestTimeout(t *testing.T) {
	_, body := do(newEngine(RequestTimeout(time.Second)), "", "")
	assert.Equal(t, true, body["hasDeadline"])

	_, body = do(newEngine(RequestTimeout(0)), "", "")
	assert.Equal(t, false, body["hasDeadline"])
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", BodyLimit(8), func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		c.JSON(http.StatusOK, gin.H{"tooLarge": errors.As(err, &tooLarge)})
	})

	post := func(body string) map[string]any {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		var out map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}
	assert.Equal(t, false, post("12345678")["tooLarge"])
	assert.Equal(t, true, post("123456789")["tooLarge"])
}
