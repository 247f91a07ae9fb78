package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/core/ports"
)

// SigningConfig carries the token signing parameters loaded once at
// process start.
type SigningConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	ValidHours int
}

// jwtIssuer signs HS256 bearer tokens.
type jwtIssuer struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
	now      func() time.Time
}

// NewTokenIssuer builds a TokenIssuer from the signing configuration.
// A missing secret is a startup error, not a per-request condition.
func NewTokenIssuer(cfg SigningConfig) (ports.TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, domain.ErrEmptySecret
	}
	validity := time.Duration(cfg.ValidHours) * time.Hour
	if validity <= 0 {
		validity = 24 * time.Hour
	}
	return &jwtIssuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		validity: validity,
		now:      time.Now,
	}, nil
}

// Issue signs a token carrying the given claims, valid from now for the
// configured duration.
func (j *jwtIssuer) Issue(claims domain.AuthClaims) (string, error) {
	now := j.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Subject,
		"email": claims.Email,
		"name":  claims.DisplayName,
		"role":  claims.Role,
		"jti":   claims.Nonce,
		"iss":   j.issuer,
		"aud":   j.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(j.validity).Unix(),
	})
	return t.SignedString(j.secret)
}
