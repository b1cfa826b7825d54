package services

import (
	"time"

	"github.com/google/uuid"
)

// TokenIssuer signs new access tokens.
type TokenIssuer interface {
	// Issue returns a signed token for the user that expires after ttl, and the expiry time.
	Issue(userID uuid.UUID, ttl time.Duration) (string, time.Time, error)
}

// TokenVerifier checks access tokens presented on requests.
type TokenVerifier interface {
	// Verify returns the user ID carried by a valid token. It fails with
	// apperrors.ErrTokenMalformed, ErrTokenExpired or ErrTokenInvalidSubject.
	Verify(token string) (uuid.UUID, error)
}

// TokenSvcFacade combines token issuing and verification.
type TokenSvcFacade interface {
	TokenIssuer
	TokenVerifier
}
