package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/model"
)

func newTestAccountService(t *testing.T) (*AccountService, *fakeUserStore) {
	t.Helper()
	auth, users := newTestAuthService(t)
	return NewAccountService(users, auth), users
}

func TestRegister(t *testing.T) {
	svc, users := newTestAccountService(t)

	req := model.RegisterUserRequest{
		FullName: "Meena Iyer",
		Email:    "meena@school.test",
		Password: "s3cret",
	}
	user, err := svc.Register(context.Background(), req, model.RoleTeacher)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("registered account has no id")
	}
	if user.Role != model.RoleTeacher {
		t.Errorf("role = %q, want %q", user.Role, model.RoleTeacher)
	}
	if user.PasswordHash == "s3cret" {
		t.Error("password stored in plaintext")
	}
	if len(users.users) != 1 {
		t.Errorf("stored %d accounts, want 1", len(users.users))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users := newTestAccountService(t)

	req := model.RegisterUserRequest{FullName: "Meena Iyer", Email: "meena@school.test", Password: "s3cret"}
	if _, err := svc.Register(context.Background(), req, model.RoleTeacher); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Same email with different casing is still the same account.
	req.Email = "MEENA@school.test"
	if _, err := svc.Register(context.Background(), req, model.RoleStudent); !errors.Is(err, ErrConflict) {
		t.Errorf("Register(duplicate email) = %v, want ErrConflict", err)
	}
	if len(users.users) != 1 {
		t.Errorf("stored %d accounts after rejected duplicate, want 1", len(users.users))
	}
}

func TestDeleteAccount(t *testing.T) {
	svc, users := newTestAccountService(t)

	req := model.RegisterUserRequest{FullName: "Meena Iyer", Email: "meena@school.test", Password: "s3cret"}
	user, err := svc.Register(context.Background(), req, model.RoleStudent)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(users.users) != 0 {
		t.Errorf("stored %d accounts after delete, want 0", len(users.users))
	}

	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}
