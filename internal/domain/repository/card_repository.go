package repository

import (
	"context"
	"errors"

	"around/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCardNotFound is a domain-specific error returned when a card is not found.
var ErrCardNotFound = errors.New("card not found")

// CardRepository defines the standard operations for card persistence.
// Like/unlike rely on the storage engine's atomic set operators so concurrent
// requests against the same card never produce duplicate liker entries.
type CardRepository interface {
	// FindAll retrieves every card.
	FindAll(ctx context.Context) ([]*entity.Card, error)

	// FindByID retrieves a single card by its unique id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Card, error)

	// Create persists a new card and fills in the generated id.
	Create(ctx context.Context, card *entity.Card) error

	// Delete removes the card and returns the deleted record.
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Card, error)

	// AddLike idempotently inserts userID into the card's liker set and
	// returns the updated card.
	AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error)

	// RemoveLike idempotently removes userID from the card's liker set and
	// returns the updated card.
	RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*entity.Card, error)
}
