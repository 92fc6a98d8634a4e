// Package delivery defines the transport-agnostic entry point contract.
package delivery

import "context"

// Delivery represents a transport that serves the application, such as
// an HTTP server. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
