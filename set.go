package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/directory"
	"github.com/manhavn/blockbucket/internal/lockfile"
	"github.com/manhavn/blockbucket/internal/planner"
)

// Set stores value under key, replacing any existing entry for key.
// Last-writer-wins: after Set(k, v1); Set(k, v2), Get(k) returns v2.
func (b *Bucket) Set(key, value []byte) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	if err := lockfile.Lock(b.file.OSFile()); err != nil {
		return bucketerr.Wrap("set", b.path, err)
	}
	defer lockfile.Unlock(b.file.OSFile())

	dirOffset, _, descs := b.readDirectory()
	survivors := b.filterOutKey(descs, key)

	blockSize := uint64(len(key) + len(value))
	placement := planner.PlaceOne(dirOffset, survivors, blockSize)

	payload := make([]byte, 0, blockSize)
	payload = append(payload, key...)
	payload = append(payload, value...)
	if _, err := b.file.WriteAt(payload, int64(placement.Start)); err != nil {
		return bucketerr.Wrap("set", b.path, err)
	}

	sumKey, sumMD5 := keySums(key)
	newDesc := directory.Descriptor{
		Start:    placement.Start,
		SizeKey:  uint64(len(key)),
		SumKey:   sumKey,
		SumMD5:   sumMD5,
		SizeData: uint64(len(value)),
	}

	body := directory.EncodeAll(append(survivors, newDesc))
	if err := directory.WriteDirectory(b.file, placement.NewDirOffset, body); err != nil {
		return bucketerr.Wrap("set", b.path, err)
	}
	return nil
}
