package resp

import (
	"errors"
	"net/http"

	"booking/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func OK(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Envelope{Message: msg, Data: data})
}

// List always emits data, so an empty result is [] and never omitted.
func List[T any](c *gin.Context, msg string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "data": items})
}

func BadRequest(c *gin.Context, code apperr.Kind, msg string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: msg, Code: string(code)})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Message: msg, Code: "UNAUTHORIZED"})
}

func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Message: msg, Code: "FORBIDDEN"})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Envelope{
		Message: "Internal Server Error",
		Error:   err.Error(),
		Code:    string(apperr.Upstream),
	})
}

// Error writes err using the status that matches its kind.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		ServerError(c, err)
		return
	}
	switch e.Kind {
	case apperr.NotFound:
		BadRequest(c, e.Kind, e.Msg)
	case apperr.Validation:
		body := Envelope{Message: e.Msg, Code: string(e.Kind)}
		if e.Err != nil {
			body.Error = e.Err.Error()
		}
		c.JSON(http.StatusBadRequest, body)
	default:
		cause := e.Err
		if cause == nil {
			cause = e
		}
		ServerError(c, cause)
	}
}
