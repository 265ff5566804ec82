package blockbucket

// ListNext returns up to limit entries in directory order, discarding
// the first skip verified entries before collecting. It returns nil if
// limit <= 0.
func (b *Bucket) ListNext(limit, skip int) []Entry {
	if err := b.checkOpen(); err != nil || limit <= 0 {
		return nil
	}

	_, _, descs := b.readDirectory()
	out := make([]Entry, 0, minInt(limit, len(descs)))
	skipped := 0

	for _, d := range descs {
		if len(out) >= limit {
			break
		}
		entry, ok := b.readVerifiedEntry(d)
		if !ok {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		out = append(out, entry)
	}
	return out
}
