package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/andrewyazura/birthday-api/internal/domain/errors"
	"github.com/andrewyazura/birthday-api/internal/domain/models"
	"github.com/andrewyazura/birthday-api/internal/handler/http/middleware"
	"github.com/andrewyazura/birthday-api/internal/service"
)

// BirthdayHandler handles the per-user birthday CRUD endpoints. The acting
// user always comes from the session claims set by the auth middleware.
type BirthdayHandler struct {
	logger    *zap.Logger
	birthdays *service.BirthdayService
}

// NewBirthdayHandler creates a new BirthdayHandler.
func NewBirthdayHandler(logger *zap.Logger, birthdays *service.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{
		logger:    logger.Named("birthday_handler"),
		birthdays: birthdays,
	}
}

// List returns all birthdays of the caller.
// GET /birthdays
func (h *BirthdayHandler) List(c *gin.Context) {
	birthdays, err := h.birthdays.List(c.Request.Context(), c.GetString(middleware.ContextTelegramIDKey))
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, birthdays)
}

// Get returns one birthday of the caller by id.
// GET /birthdays/:id
func (h *BirthdayHandler) Get(c *gin.Context) {
	id, ok := h.birthdayID(c)
	if !ok {
		return
	}

	birthday, err := h.birthdays.Get(c.Request.Context(), c.GetString(middleware.ContextTelegramIDKey), id)
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, birthday)
}

// Create validates and stores a new birthday for the caller.
// POST /birthdays
func (h *BirthdayHandler) Create(c *gin.Context) {
	req, ok := h.birthdayRequest(c)
	if !ok {
		return
	}

	birthday, err := h.birthdays.Create(c.Request.Context(), c.GetString(middleware.ContextTelegramIDKey), req)
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, birthday)
}

// Update replaces all fields of the caller's birthday with the given id.
// PUT /birthdays/:id
func (h *BirthdayHandler) Update(c *gin.Context) {
	id, ok := h.birthdayID(c)
	if !ok {
		return
	}
	req, ok := h.birthdayRequest(c)
	if !ok {
		return
	}

	birthday, err := h.birthdays.Update(c.Request.Context(), c.GetString(middleware.ContextTelegramIDKey), id, req)
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, birthday)
}

// Delete removes the caller's birthday with the given id.
// DELETE /birthdays/:id
func (h *BirthdayHandler) Delete(c *gin.Context) {
	id, ok := h.birthdayID(c)
	if !ok {
		return
	}

	if err := h.birthdays.Delete(c.Request.Context(), c.GetString(middleware.ContextTelegramIDKey), id); err != nil {
		AbortWithError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BirthdayHandler) birthdayID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot name an existing record.
		AbortWithError(c, h.logger, domainErrors.ErrBirthdayNotFound)
		return 0, false
	}
	return id, true
}

func (h *BirthdayHandler) birthdayRequest(c *gin.Context) (models.BirthdayRequest, bool) {
	var req models.BirthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, h.logger, domainErrors.NewValidationError("date", "Unprocessable birthday data"))
		return req, false
	}
	return req, true
}
