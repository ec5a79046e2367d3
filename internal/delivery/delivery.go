// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a server that can be started by the application entrypoint.
// Implementations register their own shutdown through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
