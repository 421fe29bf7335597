package model

import (
	"time"

	"github.com/google/uuid"
)

// Class represents a classroom, identified by its (standard, section) pair.
type Class struct {
	ID        uuid.UUID `json:"id"`
	Standard  int       `json:"standard"`
	Section   string    `json:"section"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Standard int    `json:"standard" binding:"required,min=1,max=12"`
	Section  string `json:"section" binding:"required,min=1,max=10"`
}
