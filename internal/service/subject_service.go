package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// SubjectService handles subject lifecycle.
type SubjectService struct {
	subjects SubjectStore
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjects SubjectStore) *SubjectService {
	return &SubjectService{subjects: subjects}
}

// Create creates a subject. The name must be unused, compared
// case-insensitively.
func (s *SubjectService) Create(ctx context.Context, name string) (*model.Subject, error) {
	_, err := s.subjects.GetByName(ctx, name)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	subject := &model.Subject{Name: name}
	if err := s.subjects.Create(ctx, subject); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return subject, nil
}

// List retrieves all subjects.
func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	return s.subjects.List(ctx)
}

// Delete removes a subject. A subject still assigned to any teacher cannot
// be deleted.
func (s *SubjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.subjects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, repository.ErrReferenced) {
			return ErrDependencyExists
		}
		return err
	}
	return nil
}
