package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/lockfile"
)

// ListLockDelete collects up to limit entries (as List would) and, if
// any were collected, trims the directory down to everything after the
// last collected entry — equivalent to DeleteTo(lastKey, true) — all
// under a single lock acquisition, so no other lock-respecting process
// can observe the listed entries as still present once this call
// returns. It returns the collected entries regardless of whether a
// trim was needed.
func (b *Bucket) ListLockDelete(limit int) ([]Entry, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	if err := lockfile.Lock(b.file.OSFile()); err != nil {
		return nil, bucketerr.Wrap("list_lock_delete", b.path, err)
	}
	defer lockfile.Unlock(b.file.OSFile())

	dirOffset, body, descs := b.readDirectory()
	entries := make([]Entry, 0, minInt(limit, len(descs)))
	for _, d := range descs {
		if len(entries) >= limit {
			break
		}
		entry, ok := b.readVerifiedEntry(d)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	lastKey := entries[len(entries)-1].Key
	if err := b.deleteToLocked(dirOffset, body, lastKey, true, "list_lock_delete"); err != nil {
		return entries, err
	}
	return entries, nil
}
