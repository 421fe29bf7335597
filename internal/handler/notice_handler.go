package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/middleware"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/response"
	"github.com/schoolpad/schoolpad-backend/internal/service"
	"github.com/schoolpad/schoolpad-backend/internal/validator"
)

// NoticeHandler handles notice management.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// CreateNotice godoc
// POST /api/v1/notices
// Creates a notice scoped to exactly one of a class or a standard.
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req model.CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := middleware.GetUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	notice, err := h.noticeService.Create(c.Request.Context(), req, user.ID)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"notice": notice})
}

// ListNotices godoc
// GET /api/v1/notices
// Lists all notices, newest first.
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.List(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notices": notices})
}

// DeleteNotice godoc
// DELETE /api/v1/notices/:id
// Deletes a notice by ID.
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), id); err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "notice deleted successfully"})
}
