package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manhavn/blockbucket/internal/directory"
)

func TestHolesOnEmptyDirectory(t *testing.T) {
	holes := Holes(128, nil)
	require.Len(t, holes, 0)
}

func TestHolesInteriorAndTail(t *testing.T) {
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 2, SizeData: 8},  // [128,138)
		{Start: 150, SizeKey: 2, SizeData: 8},  // [150,160) - hole [138,150)
	}
	holes := Holes(200, descs)

	require.Len(t, holes, 2)
	assert.Equal(t, Hole{Start: 138, Size: 12}, holes[0])
	assert.Equal(t, Hole{Start: 160, Size: 40, IsTail: true}, holes[1])
}

func TestHolesNoTailWhenFlush(t *testing.T) {
	descs := []directory.Descriptor{{Start: 128, SizeKey: 2, SizeData: 8}}
	holes := Holes(138, descs)
	require.Len(t, holes, 0)
}

func TestPlaceOneBestFitAmongInteriorHoles(t *testing.T) {
	// Two interior holes (size 20 and size 10) plus a TAIL hole; a
	// block of size 8 should land in the smallest fitting hole (10),
	// not the larger one, and not the TAIL.
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 1, SizeData: 1},   // [128,130)
		{Start: 150, SizeKey: 1, SizeData: 1},   // hole [130,150) size 20; block [150,152)
		{Start: 162, SizeKey: 1, SizeData: 1},   // hole [152,162) size 10; block [162,164)
	}
	directoryOffset := uint64(300)

	p := PlaceOne(directoryOffset, descs, 8)

	assert.Equal(t, uint64(152), p.Start)
	assert.Equal(t, directoryOffset, p.NewDirOffset)
}

func TestPlaceOneTiesBreakByEarliestStart(t *testing.T) {
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 1, SizeData: 1}, // hole before: none, cursor starts at 128
		{Start: 138, SizeKey: 1, SizeData: 1}, // hole [130,138) size 8
		{Start: 148, SizeKey: 1, SizeData: 1}, // hole [140,148) size 8
	}
	p := PlaceOne(200, descs, 8)
	assert.Equal(t, uint64(130), p.Start)
}

func TestPlaceOneFallsBackToTail(t *testing.T) {
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 1, SizeData: 1}, // occupies [128,130)
	}
	directoryOffset := uint64(140)

	p := PlaceOne(directoryOffset, descs, 20)

	assert.Equal(t, uint64(130), p.Start)
	assert.Equal(t, uint64(150), p.NewDirOffset)
}

func TestPlaceOneAppendsWhenNothingFits(t *testing.T) {
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 1, SizeData: 1}, // occupies [128,130), directory flush against it
	}
	directoryOffset := uint64(130)

	p := PlaceOne(directoryOffset, descs, 20)

	assert.Equal(t, directoryOffset, p.Start)
	assert.Equal(t, directoryOffset+20, p.NewDirOffset)
}

func TestPlaceManyPacksLargestFirst(t *testing.T) {
	// A single interior hole of size 30 plus TAIL; two blocks, 10 and
	// 20, should both land inside the size-30 hole (largest first),
	// leaving the TAIL untouched.
	descs := []directory.Descriptor{
		{Start: 128, SizeKey: 1, SizeData: 1}, // [128,130)
		{Start: 160, SizeKey: 1, SizeData: 1}, // hole [130,160) size 30
	}
	directoryOffset := uint64(300)

	placements, newOffset := PlaceMany(directoryOffset, descs, []Block{
		{Index: 0, Size: 10},
		{Index: 1, Size: 20},
	})

	require.Len(t, placements, 2)
	byIndex := map[int]uint64{}
	for _, p := range placements {
		byIndex[p.Index] = p.Start
	}
	assert.Equal(t, uint64(130), byIndex[1]) // larger block placed first
	assert.Equal(t, uint64(150), byIndex[0])
	assert.Equal(t, directoryOffset, newOffset)
}

func TestPlaceManyExtendsIntoTail(t *testing.T) {
	descs := []directory.Descriptor{{Start: 128, SizeKey: 1, SizeData: 1}} // occupies [128,130)
	directoryOffset := uint64(140)                                        // TAIL hole [130,140)

	placements, newOffset := PlaceMany(directoryOffset, descs, []Block{
		{Index: 0, Size: 10},
		{Index: 1, Size: 5},
	})

	require.Len(t, placements, 2)
	byIndex := map[int]uint64{}
	for _, p := range placements {
		byIndex[p.Index] = p.Start
	}
	assert.Equal(t, uint64(130), byIndex[0])
	assert.Equal(t, uint64(140), byIndex[1])
	assert.Equal(t, uint64(145), newOffset)
}

func TestPlaceManyAppendsPastDirectoryWhenNoHoleExists(t *testing.T) {
	descs := []directory.Descriptor{{Start: 128, SizeKey: 1, SizeData: 1}} // flush against directory
	directoryOffset := uint64(130)

	placements, newOffset := PlaceMany(directoryOffset, descs, []Block{
		{Index: 0, Size: 10},
		{Index: 1, Size: 5},
	})

	require.Len(t, placements, 2)
	assert.Equal(t, uint64(145), newOffset)
}
