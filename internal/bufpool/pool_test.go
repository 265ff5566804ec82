package bufpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsRequestedLength(t *testing.T) {
	buf := Get(10)
	require.Len(t, buf, 10)
	Release(buf)
}

func TestGetGrowsBeyondPooledCapacity(t *testing.T) {
	buf := Get(8192)
	require.Len(t, buf, 8192)
	Release(buf)
}

func TestReleaseAllowsReuse(t *testing.T) {
	first := Get(16)
	Release(first)

	second := Get(16)
	require.Len(t, second, 16)
	Release(second)
}
