package usecase

import (
	"context"

	"around/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCardInput defines the data required to create a card.
type CreateCardInput struct {
	Name string
	Link string
}

// CardUsecase defines the interface for card-related business operations.
type CardUsecase interface {
	// ListCards returns every card.
	ListCards(ctx context.Context) ([]*entity.Card, error)

	// CreateCard creates a card owned by the authenticated identity.
	CreateCard(ctx context.Context, identity primitive.ObjectID, input *CreateCardInput) (*entity.Card, error)

	// DeleteCard removes a card. Existence is checked before ownership, so a
	// non-owner probing a nonexistent id sees not-found, not forbidden.
	// Returns the deleted card.
	DeleteCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error)

	// LikeCard idempotently adds the identity to the card's liker set.
	LikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error)

	// UnlikeCard idempotently removes the identity from the card's liker set.
	UnlikeCard(ctx context.Context, identity, cardID primitive.ObjectID) (*entity.Card, error)
}
