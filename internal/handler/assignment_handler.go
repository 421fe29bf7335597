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

// AssignmentHandler handles the relationship-assignment operations.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// AssignSubject godoc
// POST /api/v1/admin/assign-subject
// Creates a teacher profile binding an account to a subject.
func (h *AssignmentHandler) AssignSubject(c *gin.Context) {
	var req model.AssignSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.assignmentService.AssignSubject(c.Request.Context(), req.UserID, req.SubjectID)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"teacher": profile})
}

// AssignClass godoc
// POST /api/v1/admin/assign-class
// Links an existing teacher profile to a class.
func (h *AssignmentHandler) AssignClass(c *gin.Context) {
	var req model.AssignClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	link, err := h.assignmentService.AssignClass(c.Request.Context(), req.UserID, req.ClassID, req.IsClassTeacher)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"link": link})
}

// TeacherOfClass godoc
// GET /api/v1/classes/:id/teachers
// Returns the teacher-class links of a class. Deliberately open to any
// caller.
func (h *AssignmentHandler) TeacherOfClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	links, err := h.assignmentService.TeacherOfClass(c.Request.Context(), classID)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"links": links})
}

// AssignStudentClass godoc
// POST /api/v1/admin/assign-student-class
// One-time class assignment for a student account.
func (h *AssignmentHandler) AssignStudentClass(c *gin.Context) {
	var req model.AssignStudentClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.assignmentService.AssignStudentClass(c.Request.Context(), req.UserID, req.ClassID, req.RollNumber)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": profile})
}
