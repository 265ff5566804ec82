package directory

import "github.com/manhavn/blockbucket/internal/varint"

// LastMatch scans body like Scan, but additionally tracks the byte
// range each descriptor's encoding occupies within body, and returns
// that range for the *last* descriptor for which match returns true.
//
// start is the byte right after the previous descriptor's encoding
// ended (0 for the first descriptor); end is the byte right after this
// descriptor's SIZE_DATA sentinel. This is exactly the pair delete_to
// needs: cutting body at start keeps the matched descriptor, cutting at
// end discards it along with everything before it.
func LastMatch(body []byte, match func(Descriptor) bool) (start, end int, found bool) {
	var d Descriptor
	var pending []byte
	descStart := 0

	for i, b := range body {
		switch b {
		case Start:
			d.Start = varint.Decode(pending)
			pending = pending[:0]
		case SizeKey:
			d.SizeKey = varint.Decode(pending)
			pending = pending[:0]
		case SumKey:
			d.SumKey = varint.Decode(pending)
			pending = pending[:0]
		case SumMD5:
			d.SumMD5 = varint.Decode(pending)
			pending = pending[:0]
		case SizeData:
			d.SizeData = varint.Decode(pending)
			pending = pending[:0]
			descEnd := i + 1
			if d.SizeKey > 0 && match(d) {
				start, end, found = descStart, descEnd, true
			}
			d = Descriptor{}
			descStart = descEnd
		case End:
			return start, end, found
		default:
			pending = append(pending, b)
		}
	}
	return start, end, found
}
