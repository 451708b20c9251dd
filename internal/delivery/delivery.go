// Package delivery defines the contract every transport front end
// (HTTP today, possibly others later) exposes to the composition root.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown is driven through the fx lifecycle hooks the
// implementation registers at construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
