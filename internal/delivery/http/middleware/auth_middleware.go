package middleware

import (
	"context"
	"log/slog"
	"strings"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyAuthToken is the echo.Context slot holding the request's resolved token.
const keyAuthToken = "auth_token"

type tokenContextKey struct{}

// AuthMiddleware is the authentication gate. Applied to a route group, it
// resolves the Authorization header into a validated token exactly once per
// request, before any handler runs; handlers read the result through
// CurrentToken and never trigger a second lookup.
type AuthMiddleware struct {
	tokenRepo repository.TokenRepository
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenRepo repository.TokenRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenRepo: tokenRepo, logger: logger}
}

// Authenticate validates the bearer token and stores the resolved identity on
// the request. On any failure the request terminates here with a classified
// error; the handler chain below is never entered.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := m.resolve(c)
		if err != nil {
			return err
		}

		c.Set(keyAuthToken, token)

		ctx := WithToken(c.Request().Context(), token)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolve runs the ordered header checks; the first failure wins and no later
// check is evaluated.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Token, error) {
	// Header.Get cannot tell an absent header from an empty value, and the
	// two map to different error kinds.
	values := c.Request().Header.Values("Authorization")
	if len(values) == 0 {
		return nil, domainerrors.ErrEmptyAuth
	}

	fields := strings.Fields(values[0])
	if len(fields) == 0 {
		return nil, domainerrors.ErrMalformedAuth
	}

	// Scheme comparison is case-sensitive: "bearer" is not accepted.
	if fields[0] != "Bearer" {
		return nil, domainerrors.ErrInvalidAuthType
	}

	if len(fields) < 2 {
		return nil, domainerrors.ErrMissingBearerToken
	}
	tokenID := fields[1]

	token, err := m.tokenRepo.FindValidToken(c.Request().Context(), tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			// The log may say which token was rejected; the response must not.
			m.logger.Info("rejected bearer token",
				slog.String("path", c.Request().URL.Path),
			)

			return nil, domainerrors.ErrInvalidToken
		}

		m.logger.Error("token lookup failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request().URL.Path),
		)

		return nil, domainerrors.ErrInternal
	}

	return token, nil
}

// CurrentToken returns the token resolved by Authenticate for this request.
// The returned value is shared by all consumers within the request and must
// be treated as read-only.
func CurrentToken(c echo.Context) (*entity.Token, bool) {
	token, ok := c.Get(keyAuthToken).(*entity.Token)

	return token, ok
}

// WithToken returns a new context carrying the request's resolved token.
func WithToken(ctx context.Context, token *entity.Token) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the request's token from a standard context, for
// consumers below the delivery layer (e.g. logging).
func TokenFromContext(ctx context.Context) (*entity.Token, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(*entity.Token)

	return token, ok
}
