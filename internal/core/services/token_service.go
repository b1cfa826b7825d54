package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/platform/config"
	"github.com/SscSPs/money_records_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenService signs and verifies stateless access tokens.
//
// The secret is fixed for the lifetime of the process. Rotating it would need
// a second verification key accepted during a grace window; that is not supported.
type tokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// TokenServiceOption is a functional option for configuring the token service.
type TokenServiceOption func(*tokenService)

// WithClock replaces the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service from the JWT settings in cfg.
func NewTokenService(cfg *config.Config, options ...TokenServiceOption) portssvc.TokenSvcFacade {
	svc := &tokenService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		now:    time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Issue signs a token for userID expiring ttl from now.
func (s *tokenService) Issue(userID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	token, err := utils.GenerateJWT(userID.String(), s.secret, issuedAt, expiresAt, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks the signature and expiry of token and returns its subject.
func (s *tokenService) Verify(token string) (uuid.UUID, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrTokenExpired, err)
		}
		return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrTokenMalformed, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %q", apperrors.ErrTokenInvalidSubject, claims.Subject)
	}
	return userID, nil
}
