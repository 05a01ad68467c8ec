// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"around/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
// Name, About and Avatar are optional; defaults apply when empty.
type SignupInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// SigninInput defines the data required to authenticate.
type SigninInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the data for a profile update.
type UpdateProfileInput struct {
	Name  string
	About string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
// Every mutation is scoped to the authenticated identity, never to a
// client-supplied target id.
type UserUsecase interface {
	// Signup creates an account with a hashed password. The returned user
	// never carries the password outward (it is excluded from JSON).
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Signin verifies credentials and returns a signed identity token.
	// It never returns the account body.
	Signin(ctx context.Context, input *SigninInput) (string, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// GetCurrentUser returns the account of the authenticated identity.
	GetCurrentUser(ctx context.Context, identity primitive.ObjectID) (*entity.User, error)

	// UpdateProfile updates name/about on the authenticated account.
	UpdateProfile(ctx context.Context, identity primitive.ObjectID, input *UpdateProfileInput) (*entity.User, error)

	// UpdateAvatar updates the avatar URL on the authenticated account.
	UpdateAvatar(ctx context.Context, identity primitive.ObjectID, avatar string) (*entity.User, error)
}
