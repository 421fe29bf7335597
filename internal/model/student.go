package model

import "github.com/google/uuid"

// StudentProfile is the 1:1 extension of a student account. It is created
// once by "assign class to student" and never updated afterwards.
type StudentProfile struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ClassID    uuid.UUID `json:"class_id"`
	RollNumber int       `json:"roll_number"`
}

// AssignStudentClassRequest is the payload for the one-time class
// assignment of a student account. UserID is the account id.
type AssignStudentClassRequest struct {
	UserID     uuid.UUID `json:"user_id" binding:"required"`
	ClassID    uuid.UUID `json:"class_id" binding:"required"`
	RollNumber int       `json:"roll_number" binding:"required,min=1"`
}

// StudentRow is one flattened student-roster row. ClassTeacher is the
// display name of the class's flagged teacher, a first-seen fallback when
// no link is flagged, or null when the class has no links at all.
type StudentRow struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Standard     int     `json:"standard"`
	Section      string  `json:"section"`
	RollNumber   int     `json:"roll_number"`
	ClassTeacher *string `json:"class_teacher"`
}
