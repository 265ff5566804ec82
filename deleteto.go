package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/directory"
	"github.com/manhavn/blockbucket/internal/lockfile"
)

// DeleteTo finds the last directory entry whose key equals key and
// discards every descriptor before it (and, if alsoDeleteFound is true,
// that descriptor itself too). Descriptors after the match, in
// directory order, survive untouched. It is a no-op if key is not
// found. Payload bytes belonging to discarded descriptors are orphaned,
// not overwritten.
func (b *Bucket) DeleteTo(key []byte, alsoDeleteFound bool) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	if err := lockfile.Lock(b.file.OSFile()); err != nil {
		return bucketerr.Wrap("delete_to", b.path, err)
	}
	defer lockfile.Unlock(b.file.OSFile())

	dirOffset, body, _ := b.readDirectory()
	return b.deleteToLocked(dirOffset, body, key, alsoDeleteFound, "delete_to")
}

// deleteToLocked implements delete_to against an already-read directory
// body, under a lock the caller already holds. It is shared with
// ListLockDelete, which performs the same trim as part of a compound
// operation and must not acquire the lock a second time.
func (b *Bucket) deleteToLocked(dirOffset uint64, body []byte, key []byte, alsoDeleteFound bool, op string) error {
	wantSumKey, wantSumMD5 := keySums(key)

	start, end, found := directory.LastMatch(body, func(d directory.Descriptor) bool {
		return b.matchesKey(d, key, wantSumKey, wantSumMD5)
	})
	if !found {
		return nil
	}

	cut := end
	if !alsoDeleteFound {
		cut = start
	}

	newBody := append([]byte(nil), body[cut:]...)
	if err := directory.WriteDirectory(b.file, dirOffset, newBody); err != nil {
		return bucketerr.Wrap(op, b.path, err)
	}
	return nil
}
