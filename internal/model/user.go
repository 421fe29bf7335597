package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents an account's access level.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Is reports whether the role matches the given one, case-insensitively.
// Roles are stored as plain strings, so comparisons must not trust casing.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// User represents an account: identity, credential hash and role.
// Accounts are immutable after registration except for deletion.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest is the payload for email/password authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterUserRequest is the payload for registering a teacher or student
// account. The role is fixed by the route, never by the caller.
type RegisterUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}
