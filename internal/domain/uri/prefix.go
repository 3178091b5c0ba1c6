// Package uri encodes the base-prefix and relative-path policy for navkit.
package uri

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotContained reports that an absolute URI does not live under a base prefix.
var ErrNotContained = errors.New("uri: absolute URI not contained in base prefix")

// BasePrefix derives the base-URI prefix from a document's declared base URI.
// The prefix is everything before the last '/' (the final path segment and the
// slash itself are dropped). A base URI without any '/' (or an empty one)
// yields the empty prefix.
func BasePrefix(rawBaseURI string) string {
	idx := strings.LastIndexByte(rawBaseURI, '/')
	if idx < 0 {
		return ""
	}
	return rawBaseURI[:idx]
}

// BaseRelative converts an absolute URI to a path relative to prefix.
//
// The comparison is byte-exact. An absolute URI equal to the prefix maps to
// "/": a host serving under a path base treats both forms as the base root.
// Otherwise the URI must extend the prefix at a '/' boundary; the returned
// path always starts with '/'. Anything else fails with ErrNotContained,
// never a best-effort result.
func BaseRelative(prefix, absoluteURI string) (string, error) {
	if absoluteURI == prefix {
		return "/", nil
	}
	if strings.HasPrefix(absoluteURI, prefix) && len(absoluteURI) > len(prefix) && absoluteURI[len(prefix)] == '/' {
		return absoluteURI[len(prefix):], nil
	}
	return "", fmt.Errorf("%w: %q is outside %q", ErrNotContained, absoluteURI, prefix)
}
