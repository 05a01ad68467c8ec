// Package delivery defines the contract for transports that serve the application.
package delivery

import "context"

// Delivery is a long-running transport (e.g. the HTTP server).
type Delivery interface {
	Serve(ctx context.Context) error
}
