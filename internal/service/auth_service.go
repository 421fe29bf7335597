package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService resolves caller identity (authentication gate) and checks
// role membership (authorization gate).
type AuthService struct {
	tokens     *TokenService
	users      UserStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(tokens *TokenService, users UserStore, bcryptCost int) *AuthService {
	return &AuthService{tokens: tokens, users: users, bcryptCost: bcryptCost}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login authenticates an email/password pair and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.FullName)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves the calling account from an Authorization header.
// It fails with ErrUnauthenticated when the bearer token is absent, does
// not verify, or names an account that no longer exists. Account deletion
// is the only way to cut a live token short.
func (s *AuthService) Authenticate(ctx context.Context, authHeader string) (*model.User, error) {
	tokenStr := extractBearer(authHeader)
	if tokenStr == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Authorize checks the account's role against the allowed set,
// case-insensitively, and returns the account unchanged on success so
// callers can chain identity through.
func (s *AuthService) Authorize(user *model.User, allowed ...model.Role) (*model.User, error) {
	for _, role := range allowed {
		if user.Role.Is(role) {
			return user, nil
		}
	}
	return nil, ErrForbidden
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	// A bare token without scheme is accepted as well.
	if len(parts) == 1 {
		return parts[0]
	}
	return ""
}
