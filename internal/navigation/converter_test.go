package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newConverterManager(t *testing.T, rawBase string) *Manager {
	t.Helper()
	return NewManagerWithState(&fakeBridge{base: rawBase}, NewState())
}

func TestToBaseRelative_PrefixItselfMapsToRoot(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	got, err := m.ToBaseRelative(ctx, "https://example.com/app")
	require.NoError(t, err)
	require.Equal(t, "/", got)
}

func TestToBaseRelative_ChildPath(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	got, err := m.ToBaseRelative(ctx, "https://example.com/app/page")
	require.NoError(t, err)
	require.Equal(t, "/page", got)
}

func TestToBaseRelative_NonSlashBoundaryRejected(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	_, err := m.ToBaseRelative(ctx, "https://example.com/application")
	require.ErrorIs(t, err, ErrNotContained)
}

func TestToBaseRelative_OutsidePrefixRejected(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	_, err := m.ToBaseRelative(ctx, "https://example.com/other")
	require.ErrorIs(t, err, ErrNotContained)
}

func TestToAbsolute_ResolvesUnderThePrefix(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	tests := []struct {
		rel  string
		want string
	}{
		{"page", "https://example.com/app/page"},
		{"docs/intro", "https://example.com/app/docs/intro"},
		{"docs/../intro", "https://example.com/app/intro"},
		{"./page", "https://example.com/app/page"},
		{"page?q=1#frag", "https://example.com/app/page?q=1#frag"},
	}
	for _, tt := range tests {
		got, err := m.ToAbsolute(ctx, tt.rel)
		require.NoError(t, err, tt.rel)
		require.Equal(t, tt.want, got, tt.rel)
	}
}

func TestToAbsolute_AbsoluteReferencePassesThrough(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	got, err := m.ToAbsolute(ctx, "https://other.example/x")
	require.NoError(t, err)
	require.Equal(t, "https://other.example/x", got)
}

func TestToAbsolute_InvalidReferenceRejected(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	_, err := m.ToAbsolute(ctx, "http://[::1/broken")
	require.ErrorIs(t, err, ErrInvalidURI)
}

func TestConverter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newConverterManager(t, "https://example.com/app/index.html")

	tests := []struct {
		rel  string
		want string // normalized base-relative form
	}{
		{"page", "/page"},
		{"docs/intro", "/docs/intro"},
		{"docs/../intro", "/intro"},
		{"a/b/../c", "/a/c"},
	}
	for _, tt := range tests {
		abs, err := m.ToAbsolute(ctx, tt.rel)
		require.NoError(t, err, tt.rel)
		back, err := m.ToBaseRelative(ctx, abs)
		require.NoError(t, err, tt.rel)
		require.Equal(t, tt.want, back, tt.rel)
	}
}
