package blockbucket

// List returns up to limit entries in directory (insertion) order,
// starting from the first. It returns nil if limit <= 0.
func (b *Bucket) List(limit int) []Entry {
	if err := b.checkOpen(); err != nil || limit <= 0 {
		return nil
	}

	_, _, descs := b.readDirectory()
	out := make([]Entry, 0, minInt(limit, len(descs)))

	for _, d := range descs {
		if len(out) >= limit {
			break
		}
		entry, ok := b.readVerifiedEntry(d)
		if !ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}
