package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolpad/schoolpad-backend/internal/response"
	"github.com/schoolpad/schoolpad-backend/internal/service"
)

// RosterHandler serves the flattened roster projections.
type RosterHandler struct {
	rosterService *service.RosterService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(rosterService *service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// ListTeachers godoc
// GET /api/v1/admin/roster/teachers
// One row per teacher-class link; zero-link teachers emit a single row
// with null class fields. Callers must not assume one row per teacher.
func (h *RosterHandler) ListTeachers(c *gin.Context) {
	rows, err := h.rosterService.ListTeachers(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": rows})
}

// ListStudents godoc
// GET /api/v1/admin/roster/students
// One row per student profile with the resolved class-teacher name.
func (h *RosterHandler) ListStudents(c *gin.Context) {
	rows, err := h.rosterService.ListStudents(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": rows})
}
