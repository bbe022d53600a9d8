package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/event-catering/internal/domain"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Errors  validators.Errors `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func Validation(c *gin.Context, errs validators.Errors) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_failed",
		Message: "Validation failed.",
		Errors:  errs,
	})
}

// Respond maps a use-case error to its HTTP shape. Anything unrecognised
// is logged and reported as a 500.
func Respond(c *gin.Context, err error) {
	var verrs validators.Errors
	if errors.As(err, &verrs) {
		Validation(c, verrs)
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		status := be.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		message := be.Message
		if message == "" {
			message = be.Code
		}
		Write(c, status, be.Code, message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "not_found", "Resource not found.")
		return
	case errors.Is(err, domain.ErrConflict):
		Conflict(c, "conflict", "Resource already exists.")
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)
	Internal(c, "internal_error", "Something went wrong.")
}
