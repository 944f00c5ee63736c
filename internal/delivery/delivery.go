// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a transport serving the application until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
