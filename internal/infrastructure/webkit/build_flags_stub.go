//go:build !webkit_cgo

package webkit

import "github.com/bnema/navkit/internal/application/port"

// IsNativeAvailable reports whether the native WebKitGTK backend is compiled in.
// In non-CGO builds this returns false and no bridge can be constructed.
func IsNativeAvailable() bool { return false }

// NewBridge always fails without the webkit_cgo build tag; the native
// WebView types are not compiled in.
func NewBridge(_ any, _ string) (port.HostBridge, error) {
	return nil, ErrNativeUnavailable
}
