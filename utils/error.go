package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// ErrorResponse is the envelope every failed request is answered with.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.BadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errors.Unauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errors.NotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// JSONError sends a standardized JSON error response. Server errors are
// logged with their cause and answered with a generic message.
func JSONError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		msg = internalErrorMessage
	} else {
		logger.Warn("request rejected", zap.Int("status", status), zap.String("reason", msg))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{OK: false, Error: msg})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					OK:    false,
					Error: internalErrorMessage,
				})
			}
		}()
		c.Next()
	}
}
