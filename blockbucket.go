// Package blockbucket implements a single-file, embedded key-value
// bucket: an insertion-ordered map from opaque byte-string keys to
// opaque byte-string values, persisted in one regular file.
//
// A Bucket is built for simple append/queue-like workloads: point
// lookup (Get), bulk insertion (Set, SetMany), pagination (List,
// ListNext), range deletion (Delete, DeleteTo), and queue-pop
// (ListLockDelete). It intentionally does not offer ordering by key,
// cryptographic integrity, or multi-process transactions — see
// SPEC_FULL.md for the full list of non-goals.
//
// A Bucket is not safe for concurrent use from multiple goroutines;
// every call is blocking and synchronous, and a handle is single-owner.
package blockbucket

import (
	"crypto/md5"

	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/rafile"
)

// Entry is a stored (key, value) pair.
type Entry struct {
	Key   []byte
	Value []byte
}

// Bucket is a handle onto one bucket file.
type Bucket struct {
	path   string
	file   *rafile.File
	closed bool
}

// Close closes the underlying file without syncing it to stable
// storage. Mutating operations write straight to the file with no
// in-process buffering, so nothing is left pending in the handle by the
// time Close is called.
func (b *Bucket) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.file.Close(); err != nil {
		return bucketerr.Wrap("close", b.path, err)
	}
	return nil
}

func (b *Bucket) checkOpen() error {
	if b.closed {
		return bucketerr.ErrClosed
	}
	return nil
}

// keySums computes the two additive prefilter fields stored on every
// descriptor: the sum of the key's bytes, and the sum of the bytes of
// the key's 128-bit MD5 digest. Neither is a checksum; both exist only
// to let a scan skip a seek+read for descriptors that plainly cannot
// match, before falling back to the authoritative byte-equal compare.
func keySums(key []byte) (sumKey, sumMD5 uint64) {
	for _, b := range key {
		sumKey += uint64(b)
	}
	digest := md5.Sum(key)
	for _, b := range digest {
		sumMD5 += uint64(b)
	}
	return sumKey, sumMD5
}

// prefilterMatches reports whether a descriptor's prefilter triple
// could possibly belong to key — it is a cheap filter, not a proof; the
// caller must still compare the actual key bytes read from disk.
func prefilterMatches(sizeKey, sumKey, sumMD5 uint64, key []byte, wantSumKey, wantSumMD5 uint64) bool {
	if sumKey == 0 {
		return false
	}
	return sizeKey == uint64(len(key)) && sumKey == wantSumKey && sumMD5 == wantSumMD5
}
