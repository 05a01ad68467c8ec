// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile field defaults applied at signup when the client omits them.
const (
	DefaultUserName   = "Jacques Cousteau"
	DefaultUserAbout  = "Explorador"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents an account in the system. The Password field holds the
// bcrypt digest, never plaintext, and is excluded from JSON so it can never
// leave the service boundary. Repository reads omit it unless the caller
// explicitly asks for it (login is the only such path).
type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	About    string             `json:"about" bson:"about"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password,omitempty"`
}

// NewUser builds a user for signup, substituting defaults for omitted
// profile fields. Email and password are always caller-supplied; the
// password digest is attached separately after hashing.
func NewUser(name, about, avatar, email string) *User {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	return &User{
		Name:   name,
		About:  about,
		Avatar: avatar,
		Email:  email,
	}
}
