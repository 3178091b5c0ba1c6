package hostbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/navigation"
)

func newSim(t *testing.T) *SimBridge {
	t.Helper()
	bridge, err := NewSimBridge(context.Background(),
		"https://example.com/app/start",
		"https://example.com/app/index.html")
	require.NoError(t, err)
	return bridge
}

func TestSimBridge_ReportsLocationAndBase(t *testing.T) {
	ctx := context.Background()
	bridge := newSim(t)

	href, err := bridge.LocationHref(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/app/start", href)

	base, err := bridge.BaseURI(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/app/index.html", base)
}

func TestSimBridge_PushStateDispatchesWhenIntercepting(t *testing.T) {
	ctx := context.Background()
	bridge := newSim(t)

	var dispatched []string
	bridge.SetDispatcher(func(u string) { dispatched = append(dispatched, u) })

	// Not armed yet: navigation moves the context but nothing is reported.
	require.NoError(t, bridge.RunScript(`history.pushState(null, "", "/app/silent")`))
	require.Empty(t, dispatched)

	require.NoError(t, bridge.EnableNavigationInterception(ctx))
	require.NoError(t, bridge.RunScript(`history.pushState(null, "", "/app/page")`))
	require.Equal(t, []string{"https://example.com/app/page"}, dispatched)

	href, err := bridge.LocationHref(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/app/page", href)
}

func TestSimBridge_RelativePushStateResolvesAgainstLocation(t *testing.T) {
	ctx := context.Background()
	bridge := newSim(t)
	require.NoError(t, bridge.EnableNavigationInterception(ctx))

	var got string
	bridge.SetDispatcher(func(u string) { got = u })

	require.NoError(t, bridge.RunScript(`history.pushState(null, "", "docs/intro")`))
	require.Equal(t, "https://example.com/app/docs/intro", got)
}

func TestSimBridge_LocationHrefAssignmentNavigates(t *testing.T) {
	ctx := context.Background()
	bridge := newSim(t)
	require.NoError(t, bridge.EnableNavigationInterception(ctx))

	var got string
	bridge.SetDispatcher(func(u string) { got = u })

	require.NoError(t, bridge.RunScript(`window.location.href = "https://example.com/app/other"`))
	require.Equal(t, "https://example.com/app/other", got)
}

func TestSimBridge_ScriptReadsLocationAndBase(t *testing.T) {
	bridge := newSim(t)

	require.NoError(t, bridge.RunScript(`
		if (location.href !== "https://example.com/app/start") throw new Error("href: " + location.href);
		if (document.baseURI !== "https://example.com/app/index.html") throw new Error("base: " + document.baseURI);
	`))
}

func TestSimBridge_DrivesNavigationManagerEndToEnd(t *testing.T) {
	ctx := context.Background()
	bridge := newSim(t)

	m := navigation.NewManagerWithState(bridge, navigation.NewState())
	bridge.SetDispatcher(func(u string) { m.Dispatch(ctx, u) })

	var seen []string
	_, err := m.AddListener(ctx, func(u string) { seen = append(seen, u) })
	require.NoError(t, err)

	require.NoError(t, bridge.RunScript(`history.pushState(null, "", "/app/page")`))

	require.Equal(t, []string{"https://example.com/app/page"}, seen)

	current, err := m.AbsoluteURI(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/app/page", current)

	rel, err := m.ToBaseRelative(ctx, current)
	require.NoError(t, err)
	require.Equal(t, "/page", rel)
}
