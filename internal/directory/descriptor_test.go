package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSingleDescriptor(t *testing.T) {
	d := Descriptor{Start: 128, SizeKey: 3, SumKey: 300, SumMD5: 4096, SizeData: 5}

	encoded := Encode(d)
	got := DecodeAll(encoded)

	require.Len(t, got, 1)
	require.Equal(t, d, got[0])
}

func TestEncodeAllRoundTripsConcatenation(t *testing.T) {
	descs := []Descriptor{
		{Start: 128, SizeKey: 1, SumKey: 10, SumMD5: 20, SizeData: 1},
		{Start: 130, SizeKey: 2, SumKey: 30, SumMD5: 40, SizeData: 2},
		{Start: 134, SizeKey: 5, SumKey: 50, SumMD5: 60, SizeData: 7},
	}

	body := EncodeAll(descs)
	require.Equal(t, descs, DecodeAll(body))

	// Concatenating two already-encoded parts decodes to the
	// concatenation of their descriptor lists.
	partA := EncodeAll(descs[:1])
	partB := EncodeAll(descs[1:])
	require.Equal(t, descs, DecodeAll(append(partA, partB...)))
}

func TestBlockSize(t *testing.T) {
	d := Descriptor{SizeKey: 4, SizeData: 9}
	require.Equal(t, uint64(13), d.BlockSize())
}
