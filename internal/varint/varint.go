// Package varint implements the digit-group integer codec used for
// every numeric field in a bucket file: the header's directory offset
// and length, and each block descriptor's five fields.
//
// The codec packs the decimal digits of a non-negative integer into a
// byte stream whose alphabet, [0,249], is disjoint from the structural
// sentinel bytes [250,255] reserved by the directory codec. This lets a
// decoder walk a byte stream and tell, without any length prefix,
// whether a byte is data or a field delimiter.
package varint

// MaxGroupValue is the highest byte value the codec ever emits. Bytes
// above this are reserved as sentinels by the directory codec.
const MaxGroupValue = 249

// Encode packs n's decimal digits into a byte stream of 1-, 2-, or
// 3-digit groups, most-significant digit first.
//
// Algorithm: scan the digits left to right. A leading zero digit is
// always emitted alone, preserving its place so decoding stays
// unambiguous. Otherwise the encoder greedily takes three digits if
// their value is ≤ 249, else two digits (always ≤ 99), else falls back
// to a single digit.
//
// Encoding 0 yields an empty slice.
func Encode(n uint64) []byte {
	if n == 0 {
		return nil
	}

	digits := digitsOf(n)
	out := make([]byte, 0, (len(digits)+2)/3)

	for i := 0; i < len(digits); {
		d0 := digits[i]
		if d0 == 0 {
			out = append(out, 0)
			i++
			continue
		}

		if i+2 < len(digits) {
			v := 100*uint16(d0) + 10*uint16(digits[i+1]) + uint16(digits[i+2])
			if v <= MaxGroupValue {
				out = append(out, byte(v))
				i += 3
				continue
			}
		}

		if i+1 < len(digits) {
			v := 10*uint16(d0) + uint16(digits[i+1])
			out = append(out, byte(v))
			i += 2
			continue
		}

		out = append(out, d0)
		i++
	}

	return out
}

// Decode reconstructs the integer packed by Encode. Each input byte is
// treated as a 1-, 2-, or 3-digit group depending on its magnitude:
// b<10 contributes one digit, b<100 two digits, otherwise three.
//
// Decode never fails: it is total on [0,249], which is all Encode ever
// produces and all a directory scan ever hands it (sentinels are
// stripped by the caller before the bytes reach Decode).
func Decode(groups []byte) uint64 {
	var n uint64
	for _, b := range groups {
		switch {
		case b < 10:
			n = n*10 + uint64(b)
		case b < 100:
			n = n*100 + uint64(b)
		default:
			n = n*1000 + uint64(b)
		}
	}
	return n
}

// digitsOf returns n's decimal digits, most-significant first.
func digitsOf(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}

	var rev []byte
	for n > 0 {
		rev = append(rev, byte(n%10))
		n /= 10
	}

	digits := make([]byte, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	return digits
}
