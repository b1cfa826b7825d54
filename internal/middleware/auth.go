package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Messages returned with a 401. Token failures share one message so callers
// cannot tell which check rejected them.
const (
	msgMissingCredentials   = "authorization header required"
	msgMalformedCredentials = "authorization header must be of the form: Bearer <token>"
	msgInvalidCredentials   = "invalid or expired token"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer tokens.
// On success the caller's domain.Principal is stored in the request context.
func AuthMiddleware(tokens portssvc.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		principal, err := authenticate(c.Request, tokens)
		if err != nil {
			logger.Warn("Request rejected by auth middleware", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": rejectionMessage(err)})
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", principal.UserID.String())))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func authenticate(r *http.Request, tokens portssvc.TokenVerifier) (domain.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Principal{}, apperrors.ErrMissingCredentials
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return domain.Principal{}, apperrors.ErrMalformedCredentials
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, errors.Join(apperrors.ErrInvalidCredentials, err)
	}
	return domain.Principal{UserID: userID}, nil
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials):
		return msgMissingCredentials
	case errors.Is(err, apperrors.ErrMalformedCredentials):
		return msgMalformedCredentials
	default:
		return msgInvalidCredentials
	}
}
