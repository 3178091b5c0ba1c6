// Package webkit adapts a WebKitGTK WebView to the navkit host bridge.
// The native backend requires the 'webkit_cgo' build tag; without it the
// package compiles but reports the backend as unavailable.
package webkit

import "errors"

var (
	// ErrNativeUnavailable is returned when the WebKitGTK backend is not
	// compiled in (missing webkit_cgo build tag).
	ErrNativeUnavailable = errors.New("webkit: native backend not available")

	// ErrNilWebView is returned when constructing a bridge without a view.
	ErrNilWebView = errors.New("webkit: WebView is nil")
)
