package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/core/ports"
)

// AuthService implements the registration and login workflows on top of a
// user store and a token issuer. The workflows hold no state of their own;
// concurrency and uniqueness are the store's responsibility.
type AuthService struct {
	store  ports.UserStore
	issuer ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(store ports.UserStore, issuer ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, issuer: issuer, log: log}
}

// Register validates the request, rejects emails already in use, creates
// the account through the store (which hashes the password), and assigns
// the default User role. Store rejections become a failed result with
// their descriptions joined by newlines; infrastructure faults are
// returned as errors.
func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) (domain.RegistrationResult, error) {
	if err := ValidateRegistration(req); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			return failedRegistration(domain.MsgInvalidEmail), nil
		}
		return failedRegistration(domain.MsgMissingFields), nil
	}

	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return domain.RegistrationResult{}, err
	}
	if existing != nil {
		return failedRegistration(domain.MsgEmailInUse), nil
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:         req.Email,
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		IsActive:      true,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, user, req.Password); err != nil {
		var accErr *domain.AccountError
		if errors.As(err, &accErr) {
			return failedRegistration(accErr.Error()), nil
		}
		return domain.RegistrationResult{}, err
	}

	if err := s.store.AddToRole(ctx, user, domain.RoleUser); err != nil {
		var accErr *domain.AccountError
		if errors.As(err, &accErr) {
			// The created account persists without its default role; there
			// is no compensating delete.
			s.log.Warn().Str("email", user.Email).Msg("account created but role assignment failed")
			return failedRegistration(accErr.Error()), nil
		}
		return domain.RegistrationResult{}, err
	}

	s.log.Info().Str("email", user.Email).Msg("account registered")
	return domain.RegistrationResult{
		Status:  domain.RegistrationSuccessful,
		Message: domain.MsgSuccessfulRegistration,
	}, nil
}

// Login verifies the credentials and issues a signed bearer token. An
// unknown email and a wrong password produce the identical failed result
// so the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest) (domain.LoginResult, error) {
	user, err := s.store.FindByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.LoginResult{Message: domain.MsgInvalidCredentials}, nil
	}
	if err != nil {
		return domain.LoginResult{}, err
	}

	ok, err := s.store.CheckPassword(ctx, user, req.Password)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if !ok {
		return domain.LoginResult{Message: domain.MsgInvalidCredentials}, nil
	}

	roles, err := s.store.GetRoles(ctx, user)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if len(roles) == 0 {
		return domain.LoginResult{}, domain.ErrUserHasNoRole
	}

	token, err := s.issuer.Issue(domain.AuthClaims{
		Subject:     user.ID,
		Email:       user.Email,
		DisplayName: user.Username,
		Role:        roles[0],
		Nonce:       uuid.NewString(),
	})
	if err != nil {
		return domain.LoginResult{}, err
	}

	s.log.Debug().Str("email", user.Email).Msg("login succeeded")
	return domain.LoginResult{Token: token, Message: domain.MsgSuccessfulLogin}, nil
}

func failedRegistration(message string) domain.RegistrationResult {
	return domain.RegistrationResult{Status: domain.RegistrationFailed, Message: message}
}
