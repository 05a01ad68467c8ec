package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"around/internal/domain/entity"
	domainerrors "around/internal/domain/errors"
	"around/internal/domain/repository"
	mockRepo "around/internal/mocks/repository"
	mockService "around/internal/mocks/service"
	"around/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockService.MockPasswordHasher{}
	tokens := &mockService.MockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "longenough").Return("$2a$10$digest", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "$2a$10$digest", user.Password)
			user.ID = primitive.NewObjectID()
		}).
		Return(nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "a@b.com",
		Password: "longenough",
	})

	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "a@b.com", user.Email)
	assert.Empty(t, user.Password)

	// Omitted profile fields fall back to defaults.
	assert.Equal(t, entity.DefaultUserName, user.Name)
	assert.Equal(t, entity.DefaultUserAbout, user.About)
	assert.Equal(t, entity.DefaultUserAvatar, user.Avatar)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "longenough").Return("$2a$10$digest", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "a@b.com",
		Password: "longenough",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "longenough").Return("", errors.New("hash failure"))

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "a@b.com",
		Password: "longenough",
	})

	assert.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "hash failures must stay generic internal errors")
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Signin_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.userRepo.On("FindByEmailWithPassword", ctx, "a@b.com").
		Return(&entity.User{ID: userID, Email: "a@b.com", Password: "$2a$10$digest"}, nil)
	fx.hasher.On("Check", "longenough", "$2a$10$digest").Return(true)
	fx.tokens.On("Issue", userID).Return("signed-token", nil)

	token, err := fx.service.Signin(ctx, &usecase.SigninInput{
		Email:    "a@b.com",
		Password: "longenough",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestUserService_Signin_UniformFailureMessage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// Unknown email.
	fx.userRepo.On("FindByEmailWithPassword", ctx, "missing@b.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownEmailErr := fx.service.Signin(ctx, &usecase.SigninInput{
		Email:    "missing@b.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrBadCredentials)

	// Wrong password.
	fx.userRepo.On("FindByEmailWithPassword", ctx, "a@b.com").
		Return(&entity.User{ID: primitive.NewObjectID(), Password: "$2a$10$digest"}, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$digest").Return(false)

	_, wrongPasswordErr := fx.service.Signin(ctx, &usecase.SigninInput{
		Email:    "a@b.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrBadCredentials)

	// Neither failure mode may issue a token.
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetCurrentUser_MissingAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	identity := primitive.NewObjectID()

	// A valid token does not guarantee the account still exists.
	fx.userRepo.On("FindByID", ctx, identity).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetCurrentUser(ctx, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_ScopedToIdentity(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	identity := primitive.NewObjectID()

	updated := &entity.User{ID: identity, Name: "Marie", About: "Oceanographer"}
	fx.userRepo.On("UpdateProfile", ctx, identity, "Marie", "Oceanographer").Return(updated, nil)

	user, err := fx.service.UpdateProfile(ctx, identity, &usecase.UpdateProfileInput{
		Name:  "Marie",
		About: "Oceanographer",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestUserService_UpdateAvatar_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	identity := primitive.NewObjectID()

	fx.userRepo.On("UpdateAvatar", ctx, identity, "https://example.com/a.png").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateAvatar(ctx, identity, "https://example.com/a.png")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
