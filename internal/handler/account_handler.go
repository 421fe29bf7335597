package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/response"
	"github.com/schoolpad/schoolpad-backend/internal/service"
	"github.com/schoolpad/schoolpad-backend/internal/validator"
)

// AccountHandler handles admin-facing account management.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterTeacher godoc
// POST /api/v1/admin/teachers
// Registers a teacher account.
func (h *AccountHandler) RegisterTeacher(c *gin.Context) {
	h.register(c, model.RoleTeacher)
}

// RegisterStudent godoc
// POST /api/v1/admin/students
// Registers a student account.
func (h *AccountHandler) RegisterStudent(c *gin.Context) {
	h.register(c, model.RoleStudent)
}

func (h *AccountHandler) register(c *gin.Context, role model.Role) {
	var req model.RegisterUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), req, role)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// ListUsers godoc
// GET /api/v1/admin/users
// Lists all accounts.
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.accountService.List(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// DeleteUser godoc
// DELETE /api/v1/admin/users/:id
// Deletes an account; dependent profiles cascade.
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted successfully"})
}
