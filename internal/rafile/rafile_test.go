package rafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("creates missing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "fresh.bucket")
		f, err := Open(path, CreateIfMissing)
		require.NoError(t, err)
		defer f.Close()
	})

	t.Run("opens existing file without truncating", func(t *testing.T) {
		path := filepath.Join(tmpDir, "existing.bucket")
		f, err := Open(path, CreateIfMissing)
		require.NoError(t, err)
		_, err = f.WriteAt([]byte("hello"), 0)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		reopened, err := Open(path, CreateIfMissing)
		require.NoError(t, err)
		defer reopened.Close()

		buf := make([]byte, 5)
		_, err = reopened.ReadAt(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(buf))
	})

	t.Run("exclusive mode fails on existing", func(t *testing.T) {
		path := filepath.Join(tmpDir, "exclusive.bucket")
		f, err := Open(path, CreateExclusive)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = Open(path, CreateExclusive)
		assert.Error(t, err)
	})
}

func TestWriteAtThenReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rw.bucket")
	f, err := Open(path, CreateIfMissing)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteAt([]byte("payload"), 128)
	require.NoError(t, err)
	require.NoError(t, f.Flush())

	buf := make([]byte, 7)
	n, err := f.ReadAt(buf, 128)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "payload", string(buf))
}

func TestOperationsAfterCloseFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.bucket")
	f, err := Open(path, CreateIfMissing)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = f.ReadAt(make([]byte, 1), 0)
	assert.Error(t, err)

	_, err = f.WriteAt([]byte{1}, 0)
	assert.Error(t, err)

	assert.Error(t, f.Flush())
	assert.NoError(t, f.Close()) // closing twice is a no-op
}
