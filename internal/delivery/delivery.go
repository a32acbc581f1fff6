// Package delivery defines the contract every transport front end
// implements.
package delivery

import "context"

// Delivery is a running transport surface of the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
