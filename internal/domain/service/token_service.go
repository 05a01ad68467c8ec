package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrTokenInvalid is the single failure signal for token verification.
// Malformed input, a bad signature and an expired token all collapse into
// this one value so callers cannot distinguish expiry from forgery.
var ErrTokenInvalid = errors.New("token invalid")

// TokenService defines the interface for issuing and verifying identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given account id.
	Issue(userID primitive.ObjectID) (string, error)

	// Verify checks signature and expiry and returns the subject account id.
	// Any failure returns ErrTokenInvalid.
	Verify(token string) (primitive.ObjectID, error)
}
