// Package navigation tracks the browsing context's location, derives the
// base-URI prefix, converts between absolute and base-relative paths, and
// fans out change notifications when the host reports a navigation.
package navigation

import (
	"net/url"
	"sync"
)

// armState models the navigation-interception arming lifecycle.
type armState int

const (
	armUnarmed armState = iota
	armArming
	armArmed
	armFailed
)

// Listener is an opaque registration handle. Removal goes by handle
// identity, so registering the same callback twice yields two handles.
type Listener struct {
	id uint64
	fn func(newURI string)
}

// State is the per-browsing-context navigation state store. All managers
// constructed over the same State observe the same location, base prefix,
// arming status and listener registry.
//
// The store lives for the lifetime of the hosting process. A process-wide
// default instance exists for the common single-context case; tests and
// multi-context hosts construct their own.
type State struct {
	mu sync.Mutex

	arm armState
	// armDone wakes registrations waiting for an in-flight arm attempt.
	armDone *sync.Cond

	// currentURI, once set, is only overwritten by Dispatch, never by the
	// passive getter.
	currentURI string
	hasCurrent bool

	// basePrefix and baseURI are populated together, exactly once, from the
	// first resolution. The parsed form reproduces the string form.
	basePrefix   string
	baseURI      *url.URL
	baseResolved bool

	listeners  []*Listener
	nextHandle uint64
}

// NewState creates an empty navigation state store.
func NewState() *State {
	s := &State{}
	s.armDone = sync.NewCond(&s.mu)
	return s
}

var defaultState = NewState()

// Default returns the process-wide shared state store.
func Default() *State {
	return defaultState
}
