// Package delivery holds the contract every served surface implements.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	// Serve blocks until the server stops; a clean shutdown returns nil.
	Serve(ctx context.Context) error
}
