package middleware

import (
	"strings"

	domainerrors "around/internal/domain/errors"
	"around/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// identityKey stores the verified account id on the echo context.
const identityKey = "identity"

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the verified identity
// to the request context. The two rejection messages are part of the API
// contract: a missing or malformed header reads "Authorization required",
// while a present-but-unverifiable token reads "Invalid token". Errors are
// returned, not written, so the terminal error handler renders them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrAuthRequired
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		identity, err := m.tokenSvc.Verify(token)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// IdentityFromContext returns the verified account id attached by
// Authenticate. The boolean is false on routes where the middleware did not
// run.
func IdentityFromContext(c echo.Context) (primitive.ObjectID, bool) {
	identity, ok := c.Get(identityKey).(primitive.ObjectID)

	return identity, ok
}
