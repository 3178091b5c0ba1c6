package navigation

import (
	"context"
	"fmt"

	"github.com/bnema/navkit/internal/logging"
)

// AbsoluteURI returns the current absolute URI of the browsing context.
//
// The first call fetches the location from the host bridge and caches it as
// the baseline; afterwards only Dispatch may overwrite the cached value. The
// bridge is consulted at most once per state store.
func (m *Manager) AbsoluteURI(ctx context.Context) (string, error) {
	s := m.state

	s.mu.Lock()
	if s.hasCurrent {
		current := s.currentURI
		s.mu.Unlock()
		return current, nil
	}
	s.mu.Unlock()

	href, err := m.bridge.LocationHref(ctx)
	if err != nil {
		return "", fmt.Errorf("navigation: fetching location: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasCurrent {
		// A Dispatch landed while the fetch was in flight; the notified
		// value wins and the passive getter never overwrites it.
		return s.currentURI, nil
	}
	s.currentURI = href
	s.hasCurrent = true

	logging.FromContext(ctx).Debug().Str("uri", href).Msg("location baseline cached")

	return href, nil
}
