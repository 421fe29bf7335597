package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
)

// AccountService handles account registration, listing and deletion.
type AccountService struct {
	users UserStore
	auth  *AuthService
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserStore, auth *AuthService) *AccountService {
	return &AccountService{users: users, auth: auth}
}

// Register creates an account with the given role. The email must not be
// in use, compared case-insensitively; the unique index on LOWER(email)
// settles any race the pre-check misses.
func (s *AccountService) Register(ctx context.Context, req model.RegisterUserRequest, role model.Role) (*model.User, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// List retrieves all accounts.
func (s *AccountService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Delete removes an account. Dependent teacher/student profiles cascade at
// the storage layer; any live token for the account dies on its next
// lookup.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
