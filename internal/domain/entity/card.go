package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is an image post. Owner is set from the authenticated identity at
// creation and never reassigned. Likes is a set of account ids; membership
// is binary and insert/remove are idempotent (the repository maintains the
// set property with atomic document updates).
type Card struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Link      string               `json:"link" bson:"link"`
	Owner     primitive.ObjectID   `json:"owner" bson:"owner"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// NewCard builds a card owned by the given account. Likes starts as an
// empty, non-nil set so it serializes as [] rather than null.
func NewCard(name, link string, owner primitive.ObjectID) *Card {
	return &Card{
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
}

// LikedBy reports whether the given account is in the card's liker set.
func (c *Card) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}

	return false
}
