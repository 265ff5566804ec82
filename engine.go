package blockbucket

import (
	"bytes"

	"github.com/manhavn/blockbucket/internal/bufpool"
	"github.com/manhavn/blockbucket/internal/directory"
)

// readDirectory reads the current header and directory body and decodes
// it into a descriptor list. Per the read-path failure policy, any I/O
// failure along the way degrades to an empty bucket rather than an
// error — directory.ReadHeader and directory.ReadBody already implement
// that degradation.
func (b *Bucket) readDirectory() (dirOffset uint64, body []byte, descs []directory.Descriptor) {
	dirOffset, length := directory.ReadHeader(b.file)
	body = directory.ReadBody(b.file, dirOffset, length)
	descs = directory.DecodeAll(body)
	return dirOffset, body, descs
}

// readKeyValue reads the key‖value payload a descriptor claims and
// splits it at size_key. The returned slices are owned by the caller;
// the pooled read buffer is released before returning.
func (b *Bucket) readKeyValue(d directory.Descriptor) (key, value []byte, err error) {
	total := int(d.SizeKey + d.SizeData)
	buf := bufpool.Get(total)
	defer bufpool.Release(buf)

	if _, err := b.file.ReadAt(buf, int64(d.Start)); err != nil {
		return nil, nil, err
	}

	key = append([]byte(nil), buf[:d.SizeKey]...)
	value = append([]byte(nil), buf[d.SizeKey:]...)
	return key, value, nil
}

// readVerifiedEntry reads a descriptor's payload and recomputes its
// prefilter triple from the bytes actually read, skipping the entry
// (ok=false) on any mismatch or read failure — the "best-effort skip on
// mismatch" integrity check the list-family operations perform.
func (b *Bucket) readVerifiedEntry(d directory.Descriptor) (Entry, bool) {
	key, value, err := b.readKeyValue(d)
	if err != nil {
		return Entry{}, false
	}
	sumKey, sumMD5 := keySums(key)
	if uint64(len(key)) != d.SizeKey || sumKey != d.SumKey || sumMD5 != d.SumMD5 {
		return Entry{}, false
	}
	return Entry{Key: key, Value: value}, true
}

// matchesKey reports whether descriptor d's stored key is exactly key,
// first consulting the cheap prefilter and only reading the payload
// when the prefilter cannot rule it out.
func (b *Bucket) matchesKey(d directory.Descriptor, key []byte, wantSumKey, wantSumMD5 uint64) bool {
	if !prefilterMatches(d.SizeKey, d.SumKey, d.SumMD5, key, wantSumKey, wantSumMD5) {
		return false
	}
	k, _, err := b.readKeyValue(d)
	return err == nil && bytes.Equal(k, key)
}

// filterOutKey returns descs with every descriptor whose key equals key
// removed. Matching duplicate keys should not exist in a correctly
// operated bucket, but the filter removes every occurrence regardless,
// matching delete's idempotent filter semantics.
func (b *Bucket) filterOutKey(descs []directory.Descriptor, key []byte) []directory.Descriptor {
	wantSumKey, wantSumMD5 := keySums(key)
	out := make([]directory.Descriptor, 0, len(descs))
	for _, d := range descs {
		if b.matchesKey(d, key, wantSumKey, wantSumMD5) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// filterOutKeys returns descs with every descriptor whose key matches
// any key among entries removed, scanning descs once.
func (b *Bucket) filterOutKeys(descs []directory.Descriptor, entries []Entry) []directory.Descriptor {
	type sums struct{ sumKey, sumMD5 uint64 }
	want := make(map[string]sums, len(entries))
	for _, e := range entries {
		sumKey, sumMD5 := keySums(e.Key)
		want[string(e.Key)] = sums{sumKey, sumMD5}
	}

	out := make([]directory.Descriptor, 0, len(descs))
	for _, d := range descs {
		drop := false
		for keyStr, s := range want {
			if uint64(len(keyStr)) != d.SizeKey || s.sumKey != d.SumKey || s.sumMD5 != d.SumMD5 {
				continue
			}
			if k, _, err := b.readKeyValue(d); err == nil && string(k) == keyStr {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, d)
		}
	}
	return out
}

// dedupeLastWins keeps, for each distinct key, only its last occurrence
// in entries, preserving that occurrence's original position — the
// deduplication set_many requires callers to perform before planning.
func dedupeLastWins(entries []Entry) []Entry {
	lastIndex := make(map[string]int, len(entries))
	for i, e := range entries {
		lastIndex[string(e.Key)] = i
	}
	out := make([]Entry, 0, len(lastIndex))
	for i, e := range entries {
		if lastIndex[string(e.Key)] == i {
			out = append(out, e)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
