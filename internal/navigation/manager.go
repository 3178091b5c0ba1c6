package navigation

import (
	"github.com/bnema/navkit/internal/application/port"
)

// Manager exposes the navigation operations over a shared State and a host
// bridge. Managers are cheap; several may exist for the same State and they
// deliberately share everything (instance identity carries no isolation).
type Manager struct {
	state  *State
	bridge port.HostBridge
}

// NewManager creates a manager over the process-wide default state.
func NewManager(bridge port.HostBridge) *Manager {
	return NewManagerWithState(bridge, Default())
}

// NewManagerWithState creates a manager over an explicit state store.
// Used by tests and by hosts driving multiple browsing contexts.
func NewManagerWithState(bridge port.HostBridge, state *State) *Manager {
	if state == nil {
		state = Default()
	}
	return &Manager{state: state, bridge: bridge}
}

// State returns the underlying state store.
func (m *Manager) State() *State {
	return m.state
}
