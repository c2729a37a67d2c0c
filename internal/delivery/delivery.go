// Package delivery defines the entry points that expose the application to the outside.
package delivery

import "context"

// Delivery is a long-running server started by the application on boot.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
