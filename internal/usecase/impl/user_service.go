// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "around/internal/delivery/context"
	"around/internal/domain/entity"
	domainerrors "around/internal/domain/errors"
	"around/internal/domain/repository"
	"around/internal/domain/service"
	"around/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup hashes the password and persists a new account. The unique email
// index resolves concurrent duplicate signups: exactly one succeeds, the
// other surfaces as a conflict.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := entity.NewUser(input.Name, input.About, input.Avatar, input.Email)
	user.Password = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("duplicate email on signup")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Account created", slog.String("userID", user.ID.Hex()))

	// The digest stays out of the response; JSON marshalling already skips
	// the field, clearing it keeps the returned entity inert as well.
	user.Password = ""

	return user, nil
}

// Signin verifies credentials and issues a token. The failure message never
// reveals whether the email or the password was wrong.
func (srv *userService) Signin(ctx context.Context, input *usecase.SigninInput) (string, error) {
	user, err := srv.userRepo.FindByEmailWithPassword(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrBadCredentials.WrapMessage("unknown email")
		}

		return "", errors.Wrap(err, "failed to look up user for signin")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return "", domainerrors.ErrBadCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("userID", user.ID.Hex()), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}

// ListUsers returns every account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns the account with the given id.
func (srv *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user by id")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetCurrentUser returns the authenticated account. A valid token does not
// guarantee the account still exists, so not-found is a real outcome here.
func (srv *userService) GetCurrentUser(ctx context.Context, identity primitive.ObjectID) (*entity.User, error) {
	return srv.GetUser(ctx, identity)
}

// UpdateProfile updates name/about on the account matching the authenticated
// identity.
func (srv *userService) UpdateProfile(ctx context.Context, identity primitive.ObjectID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.UpdateProfile(ctx, identity, input.Name, input.About)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update profile")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UpdateAvatar updates the avatar URL on the account matching the
// authenticated identity.
func (srv *userService) UpdateAvatar(ctx context.Context, identity primitive.ObjectID, avatar string) (*entity.User, error) {
	user, err := srv.userRepo.UpdateAvatar(ctx, identity, avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update avatar")
		}

		return nil, errors.Wrap(err, "failed to update avatar")
	}

	return user, nil
}
