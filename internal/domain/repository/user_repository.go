// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"around/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert violates the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
// All reads omit the password digest except FindByEmailWithPassword, which
// exists solely for credential verification during login.
type UserRepository interface {
	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// FindByEmailWithPassword retrieves a user by email including the stored
	// password digest.
	FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated id.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile atomically sets name and about on the given user and
	// returns the updated record.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, about string) (*entity.User, error)

	// UpdateAvatar atomically sets the avatar URL on the given user and
	// returns the updated record.
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) (*entity.User, error)
}
