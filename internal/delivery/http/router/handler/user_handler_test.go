package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"around/internal/delivery/http/validator"
	"around/internal/domain/entity"
	domainerrors "around/internal/domain/errors"
	mockusecase "around/internal/mocks/usecase"
	"around/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, identity primitive.ObjectID) {
	c.Set("identity", identity)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSignup_CreatedWithoutPassword(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	created := &entity.User{
		ID:     primitive.NewObjectID(),
		Name:   entity.DefaultUserName,
		About:  entity.DefaultUserAbout,
		Avatar: entity.DefaultUserAvatar,
		Email:  "diver@sea.org",
	}
	uc.On("Signup", mock.Anything, &usecase.SignupInput{
		Email:    "diver@sea.org",
		Password: "longenough",
	}).Return(created, nil)

	c, rec := newTestContext(t, http.MethodPost, "/signup",
		`{"email":"diver@sea.org","password":"longenough"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "diver@sea.org", body["email"])
	assert.Equal(t, entity.DefaultUserName, body["name"])
	assert.NotContains(t, body, "password")

	uc.AssertExpectations(t)
}

func TestSignup_InvalidEmailRejectedBeforeUsecase(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/signup",
		`{"email":"not-an-email","password":"longenough"}`)

	err := h.Signup(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, `"email" must be a valid email`, appErr.Message())

	uc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignup_ShortPasswordRejected(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/signup",
		`{"email":"diver@sea.org","password":"short"}`)

	err := h.Signup(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, `"password" length must be at least 8 characters long`, appErr.Message())

	uc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignin_ReturnsTokenOnly(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	uc.On("Signin", mock.Anything, &usecase.SigninInput{
		Email:    "diver@sea.org",
		Password: "longenough",
	}).Return("signed.jwt.token", nil)

	c, rec := newTestContext(t, http.MethodPost, "/signin",
		`{"email":"diver@sea.org","password":"longenough"}`)

	require.NoError(t, h.Signin(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"token": "signed.jwt.token"}, body)

	uc.AssertExpectations(t)
}

func TestGetUserByID_MalformedIDRejectedBeforeUsecase(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodGet, "/users/not-hex", "")
	c.SetParamNames("userId")
	c.SetParamValues("not-a-hex-identifier-at-al")

	err := h.GetUserByID(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, `"userId" must be a 24-character hex id`, appErr.Message())

	uc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestGetUserByID_OK(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	userID := primitive.NewObjectID()
	uc.On("GetUser", mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "diver@sea.org"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users/"+userID.Hex(), "")
	c.SetParamNames("userId")
	c.SetParamValues(userID.Hex())

	require.NoError(t, h.GetUserByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestGetCurrentUser_UsesAuthenticatedIdentity(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	identity := primitive.NewObjectID()
	uc.On("GetCurrentUser", mock.Anything, identity).
		Return(&entity.User{ID: identity, Email: "diver@sea.org"}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users/me", "")
	authenticate(c, identity)

	require.NoError(t, h.GetCurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestGetCurrentUser_MissingIdentity(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodGet, "/users/me", "")

	err := h.GetCurrentUser(c)
	require.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	uc.AssertNotCalled(t, "GetCurrentUser", mock.Anything, mock.Anything)
}

func TestUpdateProfile_IdentityScoped(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	identity := primitive.NewObjectID()
	uc.On("UpdateProfile", mock.Anything, identity, &usecase.UpdateProfileInput{
		Name:  "Marie Tharp",
		About: "Cartographer",
	}).Return(&entity.User{ID: identity, Name: "Marie Tharp", About: "Cartographer"}, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/users/me",
		`{"name":"Marie Tharp","about":"Cartographer"}`)
	authenticate(c, identity)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestUpdateProfile_MissingFieldsRejected(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodPatch, "/users/me", `{"name":"Marie Tharp"}`)
	authenticate(c, primitive.NewObjectID())

	err := h.UpdateProfile(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, `"about" is required`, appErr.Message())

	uc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAvatar_RejectsNonHTTPURL(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodPatch, "/users/me/avatar",
		`{"avatar":"javascript:alert(1)"}`)
	authenticate(c, primitive.NewObjectID())

	err := h.UpdateAvatar(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, `"avatar" must be a valid URL`, appErr.Message())

	uc.AssertNotCalled(t, "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything)
}

func TestListUsers_OK(t *testing.T) {
	uc := new(mockusecase.MockUserUsecase)
	h := NewUserHandler(uc, discardLogger())

	uc.On("ListUsers", mock.Anything).Return([]*entity.User{
		{ID: primitive.NewObjectID(), Email: "a@sea.org"},
		{ID: primitive.NewObjectID(), Email: "b@sea.org"},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)

	uc.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
