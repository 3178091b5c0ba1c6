package navigation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/navkit/internal/domain/uri"
)

// ToAbsolute resolves a URI reference against the browsing context's base
// prefix using standard URI-resolution rules (dot-segment normalization,
// scheme and authority inheritance). The base prefix is resolved on demand.
//
// The base acts as a directory: "page" under prefix "https://h/app" yields
// "https://h/app/page". Already-absolute references pass through untouched.
func (m *Manager) ToAbsolute(ctx context.Context, relativeURI string) (string, error) {
	if _, err := m.BasePrefix(ctx); err != nil {
		return "", err
	}

	ref, err := url.Parse(relativeURI)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURI, relativeURI, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	base := m.base()
	if base == nil {
		// Empty prefix: nothing to inherit from.
		return ref.String(), nil
	}

	return dirBase(base).ResolveReference(ref).String(), nil
}

// ToBaseRelative converts an absolute URI into a path relative to the base
// prefix. The prefix itself maps to "/"; any other URI must extend the
// prefix at a '/' boundary or the call fails with ErrNotContained.
func (m *Manager) ToBaseRelative(ctx context.Context, absoluteURI string) (string, error) {
	prefix, err := m.BasePrefix(ctx)
	if err != nil {
		return "", err
	}
	return uri.BaseRelative(prefix, absoluteURI)
}

// dirBase returns a copy of base whose path ends in '/', so relative
// references resolve inside the prefix rather than beside it.
func dirBase(base *url.URL) *url.URL {
	if strings.HasSuffix(base.Path, "/") {
		return base
	}
	dir := *base
	dir.Path += "/"
	if dir.RawPath != "" {
		dir.RawPath += "/"
	}
	return &dir
}
