package blockbucket

import "github.com/manhavn/blockbucket/internal/planner"

// Stats is a point-in-time snapshot of a bucket's layout, for
// introspection and testing; it is not part of the operation engine and
// has no effect on the file.
type Stats struct {
	EntryCount      int
	DirectoryOffset uint64
	DirectoryLength uint64
	Holes           []planner.Hole
}

// Stats reports the current entry count, directory location, and the
// planner's view of reclaimable space. It returns the zero value if the
// bucket is closed.
func (b *Bucket) Stats() Stats {
	if err := b.checkOpen(); err != nil {
		return Stats{}
	}

	dirOffset, body, descs := b.readDirectory()
	return Stats{
		EntryCount:      len(descs),
		DirectoryOffset: dirOffset,
		DirectoryLength: uint64(len(body)),
		Holes:           planner.Holes(dirOffset, descs),
	}
}
