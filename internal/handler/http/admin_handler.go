package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewyazura/birthday-api/internal/service"
)

// AdminHandler handles the privileged cross-user scans.
type AdminHandler struct {
	logger    *zap.Logger
	birthdays *service.BirthdayService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(logger *zap.Logger, birthdays *service.BirthdayService) *AdminHandler {
	return &AdminHandler{
		logger:    logger.Named("admin_handler"),
		birthdays: birthdays,
	}
}

// Incoming returns all birthdays falling on today, tomorrow or a week
// from today, across all users, annotated with the matching offset.
// GET /birthdays/incoming
func (h *AdminHandler) Incoming(c *gin.Context) {
	incoming, err := h.birthdays.Incoming(c.Request.Context())
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, incoming)
}

// All returns every stored birthday with its owner.
// GET /birthdays/all
func (h *AdminHandler) All(c *gin.Context) {
	birthdays, err := h.birthdays.All(c.Request.Context())
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, birthdays)
}
