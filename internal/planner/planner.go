// Package planner implements the free-space planner: given the current
// directory, it computes the gaps ("holes") between payload blocks and
// chooses placement offsets for one or many new blocks using a best-fit
// policy with explicit tie-break rules.
//
// This is the structural descendant of an end-of-file-only bump
// allocator: where that strategy only ever grows the file, this
// planner first tries to reuse reclaimed space and falls back to
// extending the file (via the TAIL hole) only when nothing fits.
package planner

import (
	"sort"

	"github.com/manhavn/blockbucket/internal/directory"
)

// firstPayloadOffset is the first byte offset a payload block may
// occupy: immediately after the fixed header region.
const firstPayloadOffset = directory.HeaderSize

// Hole is an unclaimed byte range inside the payload region.
//
// IsTail marks the single distinguished hole between the last placed
// block and the directory: unlike an interior hole, it has no fixed
// upper bound, since placing a block there can relocate the directory
// further down the file. The spec's original encoding of this flag
// piggybacked on the descriptor's sum_key field (set to 1); this
// implementation gives it its own bool instead, since nothing about the
// tag needs to survive to disk — it exists only for the duration of one
// planning call.
type Hole struct {
	Start  uint64
	Size   uint64
	IsTail bool
}

// Holes computes the hole list for a directory whose live descriptors
// are descs and whose directory region currently begins at
// directoryOffset. Descriptors need not be pre-sorted.
func Holes(directoryOffset uint64, descs []directory.Descriptor) []Hole {
	sorted := make([]directory.Descriptor, len(descs))
	copy(sorted, descs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var holes []Hole
	cursor := uint64(firstPayloadOffset)

	for _, d := range sorted {
		if d.Start > cursor {
			holes = append(holes, Hole{Start: cursor, Size: d.Start - cursor})
		}
		end := d.Start + d.SizeKey + d.SizeData
		if end > cursor {
			cursor = end
		}
	}

	if cursor < directoryOffset {
		holes = append(holes, Hole{Start: cursor, Size: directoryOffset - cursor, IsTail: true})
	}

	return holes
}

// Placement is the planner's answer for one new block: where to write
// it, and where the directory must move to as a result.
type Placement struct {
	Start        uint64
	NewDirOffset uint64
}

// PlaceOne chooses an offset for a single new block of blockSize bytes,
// given the current directory offset and the live descriptor list.
//
// Best-fit: among interior holes big enough for the block, the smallest
// one wins, ties broken by earliest start. Only when no interior hole
// fits does the block go to the TAIL hole (the directory then starts
// right after the block), or, if there is no TAIL hole either, at the
// current directory offset, with the directory moved down by blockSize.
func PlaceOne(directoryOffset uint64, descs []directory.Descriptor, blockSize uint64) Placement {
	holes := Holes(directoryOffset, descs)

	best, found := bestFit(holes, blockSize)
	if found {
		return Placement{Start: best.Start, NewDirOffset: directoryOffset}
	}

	if tail, ok := tailHole(holes); ok {
		return Placement{Start: tail.Start, NewDirOffset: tail.Start + blockSize}
	}

	return Placement{Start: directoryOffset, NewDirOffset: directoryOffset + blockSize}
}

// bestFit returns the smallest interior (non-TAIL) hole that fits
// blockSize, breaking ties by earliest start.
func bestFit(holes []Hole, blockSize uint64) (Hole, bool) {
	var best Hole
	found := false

	for _, h := range holes {
		if h.IsTail || h.Size < blockSize {
			continue
		}
		if !found || h.Size < best.Size || (h.Size == best.Size && h.Start < best.Start) {
			best = h
			found = true
		}
	}

	return best, found
}

func tailHole(holes []Hole) (Hole, bool) {
	for _, h := range holes {
		if h.IsTail {
			return h, true
		}
	}
	return Hole{}, false
}

// Block is one new payload block awaiting placement.
type Block struct {
	Size uint64
	// Index is the caller's original position for this block, so the
	// caller can map MultiPlacement's results back onto its own
	// insertion-order bookkeeping after PlaceMany sorts by size.
	Index int
}

// MultiPlacement is PlaceMany's per-block answer.
type MultiPlacement struct {
	Index int
	Start uint64
}

// PlaceMany places several new blocks at once. Blocks are packed
// largest-first: holes are walked in their natural (ascending-start)
// order, and each hole greedily accepts blocks that still fit its
// remaining space. A block that fits no interior hole goes to the TAIL
// hole, which accepts unlimited extension; when there is no TAIL hole,
// such blocks are laid out one after another from the current directory
// offset, and the directory moves past them.
//
// Returns the chosen start for every block (by original Index) and the
// new directory offset.
func PlaceMany(directoryOffset uint64, descs []directory.Descriptor, blocks []Block) ([]MultiPlacement, uint64) {
	holes := Holes(directoryOffset, descs)

	order := make([]Block, len(blocks))
	copy(order, blocks)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Size > order[j].Size })

	remaining := make([]uint64, len(holes))
	for i, h := range holes {
		remaining[i] = h.Size
	}

	placements := make([]MultiPlacement, 0, len(blocks))
	var tailCursor uint64
	tailIndex := -1
	for i, h := range holes {
		if h.IsTail {
			tailCursor = h.Start
			tailIndex = i
		}
	}

	appendCursor := directoryOffset
	for _, b := range order {
		placed := false

		for i := range holes {
			if holes[i].IsTail {
				continue
			}
			if remaining[i] >= b.Size {
				start := holes[i].Start + (holes[i].Size - remaining[i])
				remaining[i] -= b.Size
				placements = append(placements, MultiPlacement{Index: b.Index, Start: start})
				placed = true
				break
			}
		}

		if placed {
			continue
		}

		if tailIndex >= 0 {
			placements = append(placements, MultiPlacement{Index: b.Index, Start: tailCursor})
			tailCursor += b.Size
			placed = true
			continue
		}

		placements = append(placements, MultiPlacement{Index: b.Index, Start: appendCursor})
		appendCursor += b.Size
	}

	newDirOffset := directoryOffset
	switch {
	case tailIndex >= 0 && tailCursor > holes[tailIndex].Start:
		newDirOffset = tailCursor
	case tailIndex < 0 && appendCursor > directoryOffset:
		newDirOffset = appendCursor
	}

	return placements, newDirOffset
}
