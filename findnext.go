package blockbucket

// FindNext locates key in the directory and returns up to limit
// subsequent entries in directory order: the anchor entry itself (when
// onlyAfterKey is false) followed by every entry after it, until limit
// entries have been collected. It returns nil if limit <= 0 or key is
// not found.
func (b *Bucket) FindNext(key []byte, limit int, onlyAfterKey bool) []Entry {
	if err := b.checkOpen(); err != nil || limit <= 0 {
		return nil
	}

	_, _, descs := b.readDirectory()
	wantSumKey, wantSumMD5 := keySums(key)

	out := make([]Entry, 0, limit)
	anchored := false

	for _, d := range descs {
		if len(out) >= limit {
			break
		}

		if !anchored {
			if !b.matchesKey(d, key, wantSumKey, wantSumMD5) {
				continue
			}
			anchored = true
			if onlyAfterKey {
				continue
			}
		}

		entry, ok := b.readVerifiedEntry(d)
		if !ok {
			continue
		}
		out = append(out, entry)
	}

	if !anchored {
		return nil
	}
	return out
}
