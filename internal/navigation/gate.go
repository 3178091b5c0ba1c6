package navigation

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/navkit/internal/logging"
)

// AddListener registers a callback for location-change notifications.
//
// Before the first successful registration the gate arms the host's
// navigation interception. Arming happens at most once per state store; a
// failed arm leaves the store in the failed state and the next AddListener
// retries the bridge call. The returned handle identifies this registration
// for RemoveListener; registering the same callback twice yields two
// independent handles.
func (m *Manager) AddListener(ctx context.Context, fn func(newURI string)) (*Listener, error) {
	if fn == nil {
		return nil, fmt.Errorf("navigation: nil listener callback")
	}

	if err := m.arm(ctx); err != nil {
		return nil, err
	}

	s := m.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandle++
	l := &Listener{id: s.nextHandle, fn: fn}
	s.listeners = append(s.listeners, l)
	return l, nil
}

// RemoveListener drops a registration. Interception stays armed; removing
// the last listener only stops delivery to it.
func (m *Manager) RemoveListener(l *Listener) {
	if l == nil {
		return
	}
	s := m.state
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.listeners {
		if reg.id == l.id {
			s.listeners = slices.Delete(s.listeners, i, i+1)
			return
		}
	}
}

// Dispatch is the entry point for the host bridge when the browsing
// context's location changes. The cache is fully updated before any
// listener runs, so every listener observes the new value through
// AbsoluteURI during its own execution. The new URI is trusted verbatim.
func (m *Manager) Dispatch(ctx context.Context, newURI string) {
	s := m.state

	s.mu.Lock()
	s.currentURI = newURI
	s.hasCurrent = true
	registered := slices.Clone(s.listeners)
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("uri", newURI).
		Int("listeners", len(registered)).
		Msg("location change dispatched")

	for _, l := range registered {
		l.fn(newURI)
	}
}

// arm drives the Unarmed -> Arming -> Armed state machine. ArmFailed
// transitions back to Arming on the next attempt instead of wedging the
// gate forever. A registration that arrives while another attempt is in
// flight waits for its outcome rather than assuming success; on failure
// the waiter takes over and retries the bridge call itself.
func (m *Manager) arm(ctx context.Context) error {
	s := m.state

	s.mu.Lock()
	if s.armDone == nil {
		// Zero-value State constructed without NewState.
		s.armDone = sync.NewCond(&s.mu)
	}
	for s.arm == armArming {
		s.armDone.Wait()
	}
	if s.arm == armArmed {
		s.mu.Unlock()
		return nil
	}
	s.arm = armArming
	s.mu.Unlock()

	err := m.bridge.EnableNavigationInterception(ctx)

	s.mu.Lock()
	if err != nil {
		s.arm = armFailed
	} else {
		s.arm = armArmed
	}
	s.armDone.Broadcast()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("navigation: arming interception: %w", err)
	}
	return nil
}
