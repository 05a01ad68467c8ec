package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "around/internal/domain/errors"
	"around/internal/domain/service"
	mockService "around/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func invokeAuth(t *testing.T, tokenSvc service.TokenService, authHeader string) (error, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

	return err, c, nextCalled
}

func TestAuthenticate_NoHeader(t *testing.T) {
	tokens := &mockService.MockTokenService{}

	err, _, nextCalled := invokeAuth(t, tokens, "")

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	assert.False(t, nextCalled)
	tokens.AssertNotCalled(t, "Verify", "")
}

func TestAuthenticate_MalformedScheme(t *testing.T) {
	tokens := &mockService.MockTokenService{}

	// A non-Bearer scheme is treated the same as a missing header.
	err, _, nextCalled := invokeAuth(t, tokens, "Basic dXNlcjpwYXNz")

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	assert.False(t, nextCalled)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := &mockService.MockTokenService{}
	tokens.On("Verify", "bad-token").Return(primitive.NilObjectID, service.ErrTokenInvalid)

	err, _, nextCalled := invokeAuth(t, tokens, "Bearer bad-token")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.False(t, nextCalled)
}

func TestAuthenticate_ValidTokenAttachesIdentity(t *testing.T) {
	identity := primitive.NewObjectID()
	tokens := &mockService.MockTokenService{}
	tokens.On("Verify", "good-token").Return(identity, nil)

	err, c, nextCalled := invokeAuth(t, tokens, "Bearer good-token")

	require.NoError(t, err)
	assert.True(t, nextCalled)

	got, ok := IdentityFromContext(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestIdentityFromContext_MissingWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := IdentityFromContext(c)
	assert.False(t, ok)
}
