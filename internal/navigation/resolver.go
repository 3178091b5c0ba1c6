package navigation

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bnema/navkit/internal/domain/uri"
	"github.com/bnema/navkit/internal/logging"
)

// BasePrefix returns the base-URI prefix for the browsing context.
//
// On first call it fetches the raw declared base URI from the host bridge,
// derives the prefix (everything before the last '/') and stores both the
// prefix string and its parsed form. Every later call reuses the cached pair
// without touching the bridge. A non-empty prefix that does not parse fails
// with ErrInvalidBaseURI.
func (m *Manager) BasePrefix(ctx context.Context) (string, error) {
	s := m.state

	s.mu.Lock()
	if s.baseResolved {
		prefix := s.basePrefix
		s.mu.Unlock()
		return prefix, nil
	}
	s.mu.Unlock()

	raw, err := m.bridge.BaseURI(ctx)
	if err != nil {
		return "", fmt.Errorf("navigation: fetching base URI: %w", err)
	}

	prefix := uri.BasePrefix(raw)

	var parsed *url.URL
	if prefix != "" {
		parsed, err = url.Parse(prefix)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidBaseURI, prefix, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseResolved {
		// Another caller resolved while the bridge call was in flight;
		// the first resolution wins so the pair is populated exactly once.
		return s.basePrefix, nil
	}
	s.basePrefix = prefix
	s.baseURI = parsed
	s.baseResolved = true

	logging.FromContext(ctx).Debug().
		Str("raw_base", raw).
		Str("prefix", prefix).
		Msg("base URI prefix resolved")

	return prefix, nil
}

// base returns the cached parsed base URI, or nil when the prefix is empty.
// Callers must have resolved the prefix first.
func (m *Manager) base() *url.URL {
	m.state.mu.Lock()
	defer m.state.mu.Unlock()
	return m.state.baseURI
}
