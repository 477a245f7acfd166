// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx app.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
