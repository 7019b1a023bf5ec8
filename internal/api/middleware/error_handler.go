// Package middleware provides HTTP middleware for the registry API: request
// ids, bearer-token auth, OpenAPI contract validation and the error envelope.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// ErrorHandler is a Gin middleware that provides centralized error handling.
// It captures errors added via c.Error() and renders the house envelope
// {code, message, details?, field_errors?, request_id}. Messages stay short
// and English-only; the review frontend translates by code using details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		rid := GetRequestID(c.Request.Context())

		if appErr, ok := apperrors.IsAppError(err); ok {
			logger.Warn("Request error",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Int("status", appErr.HTTPStatus),
				zap.String("request_id", rid),
				zap.Error(appErr.Err),
			)
			body := gin.H{
				"code":       appErr.Code,
				"message":    appErr.Message,
				"request_id": rid,
			}
			if len(appErr.Params) > 0 {
				body["details"] = appErr.Params
			}
			if len(appErr.FieldErrors) > 0 {
				body["field_errors"] = appErr.FieldErrors
			}
			c.JSON(appErr.HTTPStatus, body)
			return
		}

		// Fallback: generic 500 error
		logger.Error("Unhandled request error",
			zap.String("request_id", rid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":       "INTERNAL_ERROR",
			"message":    "An internal error occurred",
			"request_id": rid,
		})
	}
}
