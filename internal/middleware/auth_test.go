package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/config"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/repository"
	"github.com/schoolpad/schoolpad-backend/internal/service"
)

type stubUserStore struct {
	user *model.User
}

func (s *stubUserStore) Create(context.Context, *model.User) error { return nil }

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserStore) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserStore) List(context.Context) ([]model.User, error) { return nil, nil }

func (s *stubUserStore) Delete(context.Context, uuid.UUID) error { return repository.ErrNotFound }

func newAuthFixture(t *testing.T, role model.Role) (*service.AuthService, *model.User, string) {
	t.Helper()
	tokens := service.NewTokenService(&config.Config{
		TokenSecret:   "test-secret",
		TokenLifetime: time.Hour,
	})
	user := &model.User{ID: uuid.New(), FullName: "Test User", Role: role}
	auth := service.NewAuthService(tokens, &stubUserStore{user: user}, 4)

	token, err := tokens.Issue(user.ID, user.FullName)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return auth, user, token
}

func TestRequireAuth(t *testing.T) {
	auth, user, token := newAuthFixture(t, model.RoleTeacher)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen *model.User
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		seen = GetUser(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if seen == nil || seen.ID != user.ID {
		t.Errorf("handler saw user %+v, want %v", seen, user.ID)
	}
}

func TestRequireAuthQueryToken(t *testing.T) {
	auth, _, token := newAuthFixture(t, model.RoleTeacher)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuthRejections(t *testing.T) {
	auth, _, _ := newAuthFixture(t, model.RoleTeacher)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	auth, _, token := newAuthFixture(t, model.RoleTeacher)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/teachers-only", RequireAuth(auth), RequireRoles(auth, model.RoleAdmin, model.RoleTeacher),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admins-only", RequireAuth(auth), RequireRoles(auth, model.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/teachers-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("allowed role: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admins-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("disallowed role: status = %d, want 403", w.Code)
	}
}
