// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport endpoint, started by the application
// lifecycle and stopped through its shutdown hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
