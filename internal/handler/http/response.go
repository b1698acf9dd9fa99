package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
)

// ErrorEnvelope is the JSON error body. Status and Code mirror the HTTP
// status; Field is present only for validation and uniqueness failures.
type ErrorEnvelope struct {
	Status      int    `json:"status"`
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Field       string `json:"field,omitempty"`
}

// AbortWithError translates any domain error into the error envelope.
// Handlers pass errors here instead of mapping statuses themselves, so the
// taxonomy lives in exactly one place.
func AbortWithError(c *gin.Context, logger *zap.Logger, err error) {
	status, field, description := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error("unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	} else {
		logger.Warn("request rejected",
			zap.Int("status", status),
			zap.String("description", description),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Status:      status,
		Code:        status,
		Name:        http.StatusText(status),
		Description: description,
		Field:       field,
	})
}

func classify(err error) (status int, field string, description string) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr.Field, validationErr.Message
	case domainErrors.IsConflict(err):
		return http.StatusUnprocessableEntity, "name", "User already has a birthday with this name"
	case errors.Is(err, domainErrors.ErrTelegramAuth):
		return http.StatusPreconditionFailed, "", "Bad credentials"
	case errors.Is(err, domainErrors.ErrBotTokenMismatch):
		return http.StatusForbidden, "", "Invalid bot id"
	case errors.Is(err, domainErrors.ErrInvalidKeyMaterial):
		return http.StatusUnprocessableEntity, "", "Decryption failed: invalid key material"
	case errors.Is(err, domainErrors.ErrAdminRequired):
		return http.StatusForbidden, "", "Admins only"
	case domainErrors.IsUnauthorized(err):
		return http.StatusUnauthorized, "", "Missing or invalid session token"
	case domainErrors.IsNotFound(err):
		return http.StatusNotFound, "", err.Error()
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		return http.StatusBadRequest, "", "Invalid request"
	default:
		return http.StatusInternalServerError, "", "Internal server error"
	}
}
