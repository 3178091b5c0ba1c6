//go:build webkit_cgo

package webkit

import (
	"context"

	wk "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/logging"
)

// Bridge exposes a WebKitGTK WebView as a navkit host bridge.
//
// WebKit's UI process has no synchronous DOM access, so the declared base
// URI is captured at construction instead of being read from the document.
// Location reads and interception ride on the view's GObject properties.
type Bridge struct {
	view         *wk.WebView
	declaredBase string

	intercepting bool
	uriHandler   coreglib.SignalHandle
	dispatch     func(newURI string)
}

var _ port.HostBridge = (*Bridge)(nil)

// NewBridge wraps the given WebView. declaredBase is the document's base
// URI; pass the app's entry URI when no <base> element is set.
func NewBridge(view *wk.WebView, declaredBase string) (*Bridge, error) {
	if view == nil {
		return nil, ErrNilWebView
	}
	return &Bridge{view: view, declaredBase: declaredBase}, nil
}

// SetDispatcher installs the callback invoked for every intercepted
// navigation. Typically wired to the navigation manager's Dispatch.
func (b *Bridge) SetDispatcher(fn func(newURI string)) {
	b.dispatch = fn
}

// LocationHref returns the WebView's current URI.
func (b *Bridge) LocationHref(_ context.Context) (string, error) {
	return b.view.URI(), nil
}

// BaseURI returns the declared base URI captured at construction.
func (b *Bridge) BaseURI(_ context.Context) (string, error) {
	return b.declaredBase, nil
}

// EnableNavigationInterception connects to the view's notify::uri signal so
// in-page navigations (history API included) reach the dispatcher. Must be
// called on the GTK main thread. Idempotent.
func (b *Bridge) EnableNavigationInterception(ctx context.Context) error {
	if b.intercepting {
		return nil
	}

	b.uriHandler = b.view.Connect("notify::uri", func() {
		uri := b.view.URI()
		logging.FromContext(ctx).Debug().Str("uri", uri).Msg("webview location changed")
		if b.dispatch != nil {
			b.dispatch(uri)
		}
	})

	b.intercepting = true
	return nil
}
