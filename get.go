package blockbucket

// Get looks up key. It returns the stored (key, value) pair on a match,
// or (nil, nil) if key is absent or any error occurs reading the
// bucket — read paths never signal I/O failure, per the engine's
// failure semantics.
func (b *Bucket) Get(key []byte) (foundKey, value []byte) {
	if err := b.checkOpen(); err != nil {
		return nil, nil
	}

	_, _, descs := b.readDirectory()
	wantSumKey, wantSumMD5 := keySums(key)

	for _, d := range descs {
		if !prefilterMatches(d.SizeKey, d.SumKey, d.SumMD5, key, wantSumKey, wantSumMD5) {
			continue
		}
		k, v, err := b.readKeyValue(d)
		if err != nil {
			continue
		}
		if string(k) == string(key) {
			return k, v
		}
	}
	return nil, nil
}
