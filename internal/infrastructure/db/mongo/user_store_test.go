package mongo

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
)

type stubLockout struct {
	locked bool

	lockoutErr   error
	failureCalls int
	resetCalls   int
}

func (l *stubLockout) IsLockedOut(_ context.Context, _ string) (bool, error) {
	return l.locked, l.lockoutErr
}

func (l *stubLockout) RecordFailure(_ context.Context, _ string) error {
	l.failureCalls++
	return nil
}

func (l *stubLockout) Reset(_ context.Context, _ string) error {
	l.resetCalls++
	return nil
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{Email: "test@example.com", PasswordHash: string(hash)}
}

func TestCheckPassword_LockedAccountFails(t *testing.T) {
	lockout := &stubLockout{locked: true}
	store := &UserStore{lockout: lockout}
	user := hashedUser(t, "Sup3r$ecret")

	// Even the correct password must fail while the account is locked,
	// indistinguishable from a wrong password.
	ok, err := store.CheckPassword(context.Background(), user, "Sup3r$ecret")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if ok {
		t.Fatalf("locked account must fail verification")
	}
	if lockout.failureCalls != 0 {
		t.Fatalf("locked attempt must not record another failure")
	}
}

func TestCheckPassword_WrongPasswordRecordsFailure(t *testing.T) {
	lockout := &stubLockout{}
	store := &UserStore{lockout: lockout}
	user := hashedUser(t, "Sup3r$ecret")

	ok, err := store.CheckPassword(context.Background(), user, "wrongpassword")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must fail verification")
	}
	if lockout.failureCalls != 1 {
		t.Fatalf("expected one recorded failure, got %d", lockout.failureCalls)
	}
	if lockout.resetCalls != 0 {
		t.Fatalf("failed attempt must not reset the counter")
	}
}

func TestCheckPassword_SuccessResetsCounter(t *testing.T) {
	lockout := &stubLockout{}
	store := &UserStore{lockout: lockout}
	user := hashedUser(t, "Sup3r$ecret")

	ok, err := store.CheckPassword(context.Background(), user, "Sup3r$ecret")
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if !ok {
		t.Fatalf("correct password must verify")
	}
	if lockout.resetCalls != 1 {
		t.Fatalf("expected one counter reset, got %d", lockout.resetCalls)
	}
	if lockout.failureCalls != 0 {
		t.Fatalf("successful attempt must not record a failure")
	}
}

func TestCheckPassword_LockoutErrorIsFatal(t *testing.T) {
	lockout := &stubLockout{lockoutErr: errors.New("redis unreachable")}
	store := &UserStore{lockout: lockout}
	user := hashedUser(t, "Sup3r$ecret")

	if _, err := store.CheckPassword(context.Background(), user, "Sup3r$ecret"); err == nil {
		t.Fatalf("expected lockout infrastructure error to propagate")
	}
}

func TestCheckPassword_NilLockout(t *testing.T) {
	store := &UserStore{}
	user := hashedUser(t, "Sup3r$ecret")

	ok, err := store.CheckPassword(context.Background(), user, "Sup3r$ecret")
	if err != nil || !ok {
		t.Fatalf("expected verification without lockout, got ok=%v err=%v", ok, err)
	}
}
