package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// Persistence seams consumed by the services. The pgx repositories satisfy
// them in production; tests substitute in-memory fakes. Implementations
// report misses as repository.ErrNotFound and unique-constraint rejections
// as repository.ErrDuplicate.

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClassStore persists classes.
type ClassStore interface {
	Create(ctx context.Context, c *model.Class) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	GetByStandardSection(ctx context.Context, standard int, section string) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubjectStore persists subjects.
type SubjectStore interface {
	Create(ctx context.Context, s *model.Subject) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	GetByName(ctx context.Context, name string) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeacherStore persists teacher profiles and teacher-class links.
type TeacherStore interface {
	CreateProfile(ctx context.Context, p *model.TeacherProfile) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.TeacherProfile, error)
	CreateLink(ctx context.Context, l *model.TeacherClassLink) error
	GetLink(ctx context.Context, teacherID, classID uuid.UUID) (*model.TeacherClassLink, error)
	ListLinksByClass(ctx context.Context, classID uuid.UUID) ([]model.TeacherClassLink, error)
	ListLinks(ctx context.Context) ([]model.TeacherClassLink, error)
	ListProfileRows(ctx context.Context) ([]repository.TeacherProfileRow, error)
}

// StudentStore persists student profiles.
type StudentStore interface {
	CreateProfile(ctx context.Context, p *model.StudentProfile) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error)
	ListProfileRows(ctx context.Context) ([]repository.StudentProfileRow, error)
}

// NoticeStore persists notices.
type NoticeStore interface {
	Create(ctx context.Context, n *model.Notice) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Notice, error)
	List(ctx context.Context) ([]model.Notice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
