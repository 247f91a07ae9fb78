package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
)

type stubUserStore struct {
	user  *domain.User
	roles []string
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserStore) CheckPassword(_ context.Context, _ *domain.User, _ string) (bool, error) {
	return false, nil
}

func (s *stubUserStore) GetRoles(_ context.Context, _ *domain.User) ([]string, error) {
	return s.roles, nil
}

func (s *stubUserStore) Create(_ context.Context, _ *domain.User, _ string) error {
	return nil
}

func (s *stubUserStore) AddToRole(_ context.Context, _ *domain.User, _ string) error {
	return nil
}

func TestUserHandler_GetByEmail(t *testing.T) {
	e := newTestEcho()
	store := &stubUserStore{
		user: &domain.User{
			ID:       "user-1",
			Email:    "test@example.com",
			Username: "testuser",
			IsActive: true,
		},
		roles: []string{domain.RoleUser},
	}
	handler := NewUserHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/identity/users/test@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("test@example.com")

	if err := handler.GetByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "user-1" || resp.Email != "test@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Roles) != 1 || resp.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", resp.Roles)
	}
}

func TestUserHandler_GetByEmail_NotFound(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/identity/users/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")

	err := handler.GetByEmail(c)
	if err == nil {
		t.Fatalf("expected error for unknown user")
	}
}
