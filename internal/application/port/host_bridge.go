package port

import "context"

// HostBridge defines the port interface to the browsing-context host.
// Each call is a synchronous round-trip into the host environment; the
// bridge never retries and never suppresses host failures.
type HostBridge interface {
	// LocationHref returns the current absolute URI of the browsing context.
	LocationHref(ctx context.Context) (string, error)

	// BaseURI returns the raw declared base URI of the current document.
	BaseURI(ctx context.Context) (string, error)

	// EnableNavigationInterception arms low-level interception of navigation
	// events in the host. Idempotent at the host level.
	EnableNavigationInterception(ctx context.Context) error
}
