package model

import "github.com/google/uuid"

// TeacherProfile is the 1:1 extension of a teacher account. It carries
// exactly one subject; creating it is what "assign subject to teacher" does.
type TeacherProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	SubjectID uuid.UUID `json:"subject_id"`
}

// TeacherClassLink joins a teacher profile to a class. The (teacher, class)
// pair is unique; is_class_teacher exclusivity per class is a convention,
// not a constraint.
type TeacherClassLink struct {
	ID             uuid.UUID `json:"id"`
	TeacherID      uuid.UUID `json:"teacher_id"`
	ClassID        uuid.UUID `json:"class_id"`
	IsClassTeacher bool      `json:"is_class_teacher"`
}

// AssignSubjectRequest is the payload for assigning a subject to a teacher
// account, creating its teacher profile.
type AssignSubjectRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
}

// AssignClassRequest is the payload for linking an existing teacher profile
// to a class.
type AssignClassRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	ClassID        uuid.UUID `json:"class_id" binding:"required"`
	IsClassTeacher bool      `json:"is_class_teacher"`
}

// TeacherRow is one flattened teacher-roster row. A teacher with N class
// links produces max(1, N) rows; class fields are null when no link exists.
type TeacherRow struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Subject        string  `json:"subject"`
	Standard       *int    `json:"standard"`
	Section        *string `json:"section"`
	IsClassTeacher bool    `json:"is_class_teacher"`
}
