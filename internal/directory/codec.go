package directory

import "github.com/manhavn/blockbucket/internal/varint"

// Scan decodes body as a sequence of descriptors, invoking yield for
// each one as soon as its SIZE_DATA sentinel completes it; a descriptor
// whose size_key is 0 is skipped and never reaches yield. It stops
// early if yield returns false, at the first END sentinel, or at the
// end of input.
//
// Scan never fails. A truncated or malformed body — a dangling partial
// descriptor, an out-of-order sentinel — simply stops producing
// descriptors at the point the stream stops making sense; there is no
// corruption signal, matching the directory's documented failure mode.
func Scan(body []byte, yield func(Descriptor) bool) {
	var d Descriptor
	var pending []byte

	for _, b := range body {
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
			if d.SizeKey > 0 {
				if !yield(d) {
					return
				}
			}
			d = Descriptor{}
		case End:
			return
		default:
			pending = append(pending, b)
		}
	}
}

// DecodeAll collects every descriptor in body that Scan yields (those
// with a non-zero size_key), in directory order.
func DecodeAll(body []byte) []Descriptor {
	var out []Descriptor
	Scan(body, func(d Descriptor) bool {
		out = append(out, d)
		return true
	})
	return out
}
