package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/directory"
	"github.com/manhavn/blockbucket/internal/lockfile"
)

// Delete removes every entry whose key equals key. It is a no-op, and
// performs no commit write, if key is not present.
func (b *Bucket) Delete(key []byte) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	if err := lockfile.Lock(b.file.OSFile()); err != nil {
		return bucketerr.Wrap("delete", b.path, err)
	}
	defer lockfile.Unlock(b.file.OSFile())

	dirOffset, _, descs := b.readDirectory()
	survivors := b.filterOutKey(descs, key)
	if len(survivors) == len(descs) {
		return nil
	}

	body := directory.EncodeAll(survivors)
	if err := directory.WriteDirectory(b.file, dirOffset, body); err != nil {
		return bucketerr.Wrap("delete", b.path, err)
	}
	return nil
}
