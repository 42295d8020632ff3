package resp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestListEmitsEmptyArray(t *testing.T) {
	w, body := record(func(c *gin.Context) { List[string](c, "Get room successful", nil) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Get room successful", body["message"])
	require.Contains(t, body, "data")
	assert.Equal(t, []any{}, body["data"])
}

func TestErrorMapsKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", apperr.NewNotFound("Room is not found!"), http.StatusBadRequest, "NOT_FOUND", "Room is not found!"},
		{"validation", apperr.NewValidation("invalid hotelId", errors.New("bad hex")), http.StatusBadRequest, "VALIDATION_FAILED", "invalid hotelId"},
		{"upstream", apperr.NewUpstream(errors.New("quota exceeded")), http.StatusInternalServerError, "UPSTREAM_FAILURE", "Internal Server Error"},
		{"plain", errors.New("disk I/O error"), http.StatusInternalServerError, "UPSTREAM_FAILURE", "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(func(c *gin.Context) { Error(c, tt.err) })

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.msg, body["message"])
		})
	}
}

func TestServerErrorPassesCauseThrough(t *testing.T) {
	_, body := record(func(c *gin.Context) { Error(c, apperr.NewUpstream(errors.New("quota exceeded"))) })
	assert.Equal(t, "quota exceeded", body["error"])
}
