package ports

import (
	"context"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
)

// UserStore is the persistence collaborator the auth workflows depend on.
// FindByEmail matches case-insensitively and returns domain.ErrUserNotFound
// when no account exists. Create and AddToRole return *domain.AccountError
// for expected store-level rejections (password policy, duplicate email,
// unknown role) and plain errors for infrastructure faults.
//
// The store, not the workflow, is the authority on email uniqueness: the
// workflow's FindByEmail pre-check is an optimization and the store must
// back it with a unique index.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CheckPassword(ctx context.Context, user *domain.User, password string) (bool, error)
	GetRoles(ctx context.Context, user *domain.User) ([]string, error)
	Create(ctx context.Context, user *domain.User, password string) error
	AddToRole(ctx context.Context, user *domain.User, role string) error
}
