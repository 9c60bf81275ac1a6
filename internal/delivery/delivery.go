// Package delivery defines the transports that expose the client core.
package delivery

import "context"

// Delivery is a long-running transport started by the application
type Delivery interface {
	// Serve blocks until the transport stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
