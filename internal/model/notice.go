package model

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a broadcast record scoped to exactly one of a class or a
// standard (grade level), never both and never neither.
type Notice struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	ClassID     *uuid.UUID `json:"class_id"`
	Standard    *int       `json:"standard"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateNoticeRequest is the payload for creating a notice. Exactly one of
// ClassID and Standard must be set; the service rejects anything else.
type CreateNoticeRequest struct {
	Title       string     `json:"title" binding:"required,min=2,max=200"`
	Description string     `json:"description" binding:"required"`
	ClassID     *uuid.UUID `json:"class_id"`
	Standard    *int       `json:"standard"`
}
