// Package hostbridge provides host-bridge adapters for navkit.
package hostbridge

import (
	"context"

	"github.com/bnema/navkit/internal/application/port"
)

// StaticBridge serves fixed location and base values. Used by one-shot CLI
// commands where no live browsing context exists.
type StaticBridge struct {
	href string
	base string
}

var _ port.HostBridge = (*StaticBridge)(nil)

// NewStaticBridge creates a bridge that always reports the given values.
func NewStaticBridge(href, base string) *StaticBridge {
	return &StaticBridge{href: href, base: base}
}

func (s *StaticBridge) LocationHref(_ context.Context) (string, error) {
	return s.href, nil
}

func (s *StaticBridge) BaseURI(_ context.Context) (string, error) {
	return s.base, nil
}

func (s *StaticBridge) EnableNavigationInterception(_ context.Context) error {
	return nil
}
