package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/directory"
	"github.com/manhavn/blockbucket/internal/lockfile"
	"github.com/manhavn/blockbucket/internal/planner"
)

// SetMany stores every entry in entries in one commit. If entries
// contains duplicate keys, the last occurrence wins; callers relying on
// earlier occurrences surviving will be surprised, so entries is
// deduplicated before planning rather than left for the directory scan
// to sort out.
func (b *Bucket) SetMany(entries []Entry) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	deduped := dedupeLastWins(entries)

	if err := lockfile.Lock(b.file.OSFile()); err != nil {
		return bucketerr.Wrap("set_many", b.path, err)
	}
	defer lockfile.Unlock(b.file.OSFile())

	dirOffset, _, descs := b.readDirectory()
	survivors := b.filterOutKeys(descs, deduped)

	blocks := make([]planner.Block, len(deduped))
	for i, e := range deduped {
		blocks[i] = planner.Block{Size: uint64(len(e.Key) + len(e.Value)), Index: i}
	}
	placements, newDirOffset := planner.PlaceMany(dirOffset, survivors, blocks)

	starts := make([]uint64, len(deduped))
	for _, p := range placements {
		starts[p.Index] = p.Start
	}

	for i, e := range deduped {
		payload := make([]byte, 0, len(e.Key)+len(e.Value))
		payload = append(payload, e.Key...)
		payload = append(payload, e.Value...)
		if _, err := b.file.WriteAt(payload, int64(starts[i])); err != nil {
			return bucketerr.Wrap("set_many", b.path, err)
		}
	}

	newDescs := make([]directory.Descriptor, 0, len(survivors)+len(deduped))
	newDescs = append(newDescs, survivors...)
	for i, e := range deduped {
		sumKey, sumMD5 := keySums(e.Key)
		newDescs = append(newDescs, directory.Descriptor{
			Start:    starts[i],
			SizeKey:  uint64(len(e.Key)),
			SumKey:   sumKey,
			SumMD5:   sumMD5,
			SizeData: uint64(len(e.Value)),
		})
	}

	body := directory.EncodeAll(newDescs)
	if err := directory.WriteDirectory(b.file, newDirOffset, body); err != nil {
		return bucketerr.Wrap("set_many", b.path, err)
	}
	return nil
}
