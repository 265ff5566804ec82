package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanStopsAtEnd(t *testing.T) {
	descs := []Descriptor{
		{Start: 128, SizeKey: 1, SumKey: 1, SizeData: 1},
		{Start: 130, SizeKey: 1, SumKey: 2, SizeData: 1},
	}
	body := append(EncodeAll(descs), End, 9, 9, 9) // garbage after END

	got := DecodeAll(body)
	require.Equal(t, descs, got)
}

func TestScanTruncatesMalformedInput(t *testing.T) {
	// A dangling descriptor with no SIZE_DATA sentinel never completes,
	// so it is silently dropped rather than erroring.
	good := Descriptor{Start: 128, SizeKey: 1, SumKey: 1, SizeData: 1}
	body := Encode(good)
	body = append(body, 1, 2, 3) // partial trailing descriptor, no terminator

	got := DecodeAll(body)
	require.Equal(t, []Descriptor{good}, got)
}

func TestScanSkipsZeroSizeKeyDescriptors(t *testing.T) {
	// A descriptor with size_key == 0 (as written for an empty key, for
	// example) never reaches the consumer.
	zeroKey := Encode(Descriptor{Start: 200, SizeKey: 0, SizeData: 10})
	real := Encode(Descriptor{Start: 128, SizeKey: 1, SumKey: 1, SizeData: 1})

	got := DecodeAll(append(zeroKey, real...))
	require.Len(t, got, 1)
	require.Equal(t, uint64(128), got[0].Start)
}

func TestScanEarlyExit(t *testing.T) {
	descs := []Descriptor{
		{Start: 128, SizeKey: 1, SumKey: 1, SizeData: 1},
		{Start: 130, SizeKey: 1, SumKey: 2, SizeData: 1},
		{Start: 132, SizeKey: 1, SumKey: 3, SizeData: 1},
	}
	body := EncodeAll(descs)

	var seen []Descriptor
	Scan(body, func(d Descriptor) bool {
		seen = append(seen, d)
		return len(seen) < 2
	})

	require.Equal(t, descs[:2], seen)
}
