package lockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockUnlockRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.bucket")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, Lock(f))
	require.NoError(t, Unlock(f))
}
