package hostbridge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/grafana/sobek"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/logging"
)

// SimBridge is a scripted browsing context backed by a sobek runtime. It
// exposes window.location, document.baseURI and history.pushState /
// replaceState to JavaScript, so navigation scenarios can be driven from a
// script instead of a real WebView.
//
// The runtime is not goroutine-safe; drive a SimBridge from a single
// goroutine, matching the single-UI-context model of the host boundary.
type SimBridge struct {
	vm       *sobek.Runtime
	ctx      context.Context
	baseURI  string
	location *url.URL

	intercepting bool
	dispatch     func(newURI string)
}

var _ port.HostBridge = (*SimBridge)(nil)

// NewSimBridge creates a simulated browsing context positioned at
// initialLocation with the given declared base URI.
func NewSimBridge(ctx context.Context, initialLocation, baseURI string) (*SimBridge, error) {
	loc, err := url.Parse(initialLocation)
	if err != nil {
		return nil, fmt.Errorf("hostbridge: invalid initial location %q: %w", initialLocation, err)
	}

	b := &SimBridge{
		vm:       sobek.New(),
		ctx:      ctx,
		baseURI:  baseURI,
		location: loc,
	}
	if err := b.setupGlobals(); err != nil {
		return nil, err
	}
	return b, nil
}

// SetDispatcher installs the callback invoked for every intercepted
// navigation. Typically wired to the navigation manager's Dispatch.
func (b *SimBridge) SetDispatcher(fn func(newURI string)) {
	b.dispatch = fn
}

// LocationHref returns the simulated context's current absolute URI.
func (b *SimBridge) LocationHref(_ context.Context) (string, error) {
	return b.location.String(), nil
}

// BaseURI returns the simulated document's declared base URI.
func (b *SimBridge) BaseURI(_ context.Context) (string, error) {
	return b.baseURI, nil
}

// EnableNavigationInterception starts reporting script-driven navigations
// through the dispatcher. Idempotent.
func (b *SimBridge) EnableNavigationInterception(_ context.Context) error {
	b.intercepting = true
	return nil
}

// RunScript executes a navigation scenario in the simulated context.
func (b *SimBridge) RunScript(src string) error {
	if _, err := b.vm.RunString(src); err != nil {
		return fmt.Errorf("hostbridge: script failed: %w", err)
	}
	return nil
}

// Navigate moves the simulated context to uri from the Go side, resolving
// it against the current location the way a link click would.
func (b *SimBridge) Navigate(uri string) error {
	return b.navigate(uri)
}

func (b *SimBridge) navigate(ref string) error {
	target, err := b.location.Parse(ref)
	if err != nil {
		return fmt.Errorf("hostbridge: invalid navigation target %q: %w", ref, err)
	}
	b.location = target

	newURI := target.String()
	logging.FromContext(b.ctx).Debug().
		Str("uri", newURI).
		Bool("intercepting", b.intercepting).
		Msg("simulated navigation")

	if b.intercepting && b.dispatch != nil {
		b.dispatch(newURI)
	}
	return nil
}

// setupGlobals installs window, document, location and history objects.
func (b *SimBridge) setupGlobals() error {
	vm := b.vm

	location := vm.NewObject()
	err := location.DefineAccessorProperty("href",
		vm.ToValue(func(_ sobek.FunctionCall) sobek.Value {
			return vm.ToValue(b.location.String())
		}),
		vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			if len(call.Arguments) >= 1 {
				_ = b.navigate(call.Arguments[0].String())
			}
			return sobek.Undefined()
		}),
		sobek.FLAG_FALSE, sobek.FLAG_TRUE)
	if err != nil {
		return fmt.Errorf("hostbridge: defining location.href: %w", err)
	}
	if err := location.Set("assign", func(call sobek.FunctionCall) sobek.Value {
		if len(call.Arguments) >= 1 {
			_ = b.navigate(call.Arguments[0].String())
		}
		return sobek.Undefined()
	}); err != nil {
		return fmt.Errorf("hostbridge: defining location.assign: %w", err)
	}

	history := vm.NewObject()
	historyChange := func(call sobek.FunctionCall) sobek.Value {
		// pushState(state, unused, url) — only the url matters here.
		if len(call.Arguments) >= 3 && !sobek.IsUndefined(call.Arguments[2]) && !sobek.IsNull(call.Arguments[2]) {
			_ = b.navigate(call.Arguments[2].String())
		}
		return sobek.Undefined()
	}
	if err := history.Set("pushState", historyChange); err != nil {
		return fmt.Errorf("hostbridge: defining history.pushState: %w", err)
	}
	if err := history.Set("replaceState", historyChange); err != nil {
		return fmt.Errorf("hostbridge: defining history.replaceState: %w", err)
	}

	document := vm.NewObject()
	err = document.DefineAccessorProperty("baseURI",
		vm.ToValue(func(_ sobek.FunctionCall) sobek.Value {
			return vm.ToValue(b.baseURI)
		}),
		nil, sobek.FLAG_FALSE, sobek.FLAG_TRUE)
	if err != nil {
		return fmt.Errorf("hostbridge: defining document.baseURI: %w", err)
	}

	window := vm.NewObject()
	if err := window.Set("location", location); err != nil {
		return fmt.Errorf("hostbridge: defining window.location: %w", err)
	}

	for name, value := range map[string]*sobek.Object{
		"window":   window,
		"location": location,
		"history":  history,
		"document": document,
	} {
		if err := vm.Set(name, value); err != nil {
			return fmt.Errorf("hostbridge: defining %s: %w", name, err)
		}
	}

	return nil
}
