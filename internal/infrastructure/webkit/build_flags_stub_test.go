//go:build !webkit_cgo

package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubBuildReportsNativeUnavailable(t *testing.T) {
	assert.False(t, IsNativeAvailable())

	bridge, err := NewBridge(nil, "https://app.localhost/app/index.html")
	require.ErrorIs(t, err, ErrNativeUnavailable)
	assert.Nil(t, bridge)
}
