// Package delivery defines the contract every transport (HTTP API, worker) implements.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
