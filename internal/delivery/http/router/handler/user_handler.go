// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"around/internal/delivery/http/middleware"
	"around/internal/delivery/http/response"
	domainerrors "around/internal/domain/errors"
	"around/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request DTOs. The validate tags are the declarative per-route schemas;
// echo's Validator rejects the request before any handler logic runs.

type signupRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,http_url"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,http_url"`
}

// userIDParam validates the :userId path segment as a 24-hex id before any
// lookup is attempted; a malformed id is a validation failure, not not-found.
type userIDParam struct {
	UserID string `param:"userId" validate:"required,mongodb"`
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles POST /signup.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Signin handles POST /signin. The response carries only the token, never
// the account body.
func (h *UserHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.uc.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Token{Token: token})
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, users)
}

// GetCurrentUser handles GET /users/me.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserByID handles GET /users/:userId.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	var params userIDParam
	if err := bindAndValidate(c, &params); err != nil {
		return err
	}

	userID, err := primitive.ObjectIDFromHex(params.UserID)
	if err != nil {
		// Unreachable after the mongodb format check; kept as a guard.
		return domainerrors.NewValidationError(`"userId" must be a 24-character hex id`)
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		Name:  req.Name,
		About: req.About,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateAvatarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateAvatar(c.Request().Context(), identity, req.Avatar)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into dst and runs the declarative
// schema. Both failure modes surface as 400s through the error handler.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// requireIdentity fetches the identity set by the auth middleware. Protected
// routes are mounted behind it, so a miss here means a wiring bug rather
// than a client error.
func requireIdentity(c echo.Context) (primitive.ObjectID, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return primitive.NilObjectID, domainerrors.ErrAuthRequired
	}

	return identity, nil
}
