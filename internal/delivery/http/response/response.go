// Package response defines the wire shapes shared by handlers and the
// terminal error handler.
package response

// Message is the uniform error payload: every error response body is exactly
// {"message": "..."} with no further detail.
type Message struct {
	Message string `json:"message"`
}

// New builds a Message payload.
func New(text string) Message {
	return Message{Message: text}
}

// Token is the signin success payload. The account body is never returned
// alongside the token.
type Token struct {
	Token string `json:"token"`
}
