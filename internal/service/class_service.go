package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// ClassService handles class lifecycle.
type ClassService struct {
	classes ClassStore
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore) *ClassService {
	return &ClassService{classes: classes}
}

// Create creates a class. The (standard, section) pair must be unused; the
// unique constraint settles any race the pre-check misses.
func (s *ClassService) Create(ctx context.Context, standard int, section string) (*model.Class, error) {
	_, err := s.classes.GetByStandardSection(ctx, standard, section)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	class := &model.Class{Standard: standard, Section: section}
	if err := s.classes.Create(ctx, class); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return class, nil
}

// List retrieves all classes.
func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.classes.List(ctx)
}

// Delete removes a class. Teacher links and class notices cascade away;
// a class still holding students cannot be deleted.
func (s *ClassService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.classes.Delete(ctx, id); err != nil {
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
