package directory

import (
	"io"

	"github.com/manhavn/blockbucket/internal/varint"
)

// HeaderSize is the fixed size, in bytes, of the header region at the
// start of every bucket file.
const HeaderSize = 128

// EncodeHeader serialises the two header fields: the directory's
// absolute byte offset and its byte length, each varint-encoded and
// END-terminated. The result is shorter than HeaderSize; the remaining
// bytes of the header region are left untouched on disk (undefined, per
// the format).
func EncodeHeader(offset, length uint64) []byte {
	out := make([]byte, 0, HeaderSize)
	out = append(out, varint.Encode(offset)...)
	out = append(out, End)
	out = append(out, varint.Encode(length)...)
	out = append(out, End)
	return out
}

// DecodeHeader parses a header buffer (normally HeaderSize bytes, but a
// shorter read is tolerated) into the directory offset and length. A
// buffer too short to contain two END-terminated fields, or one whose
// decoded offset is less than HeaderSize, is treated as describing an
// empty bucket: offset defaults to HeaderSize, length to 0.
func DecodeHeader(buf []byte) (offset, length uint64) {
	var firstGroup, secondGroup []byte
	ends := 0

	for _, b := range buf {
		if b == End {
			ends++
			if ends >= 2 {
				break
			}
			continue
		}
		switch ends {
		case 0:
			firstGroup = append(firstGroup, b)
		case 1:
			secondGroup = append(secondGroup, b)
		}
	}

	if ends < 2 {
		return HeaderSize, 0
	}

	offset = varint.Decode(firstGroup)
	length = varint.Decode(secondGroup)
	if offset < HeaderSize {
		return HeaderSize, 0
	}
	return offset, length
}

// ReadHeader reads and decodes the header from the start of r. Any read
// failure — including the short read of a brand-new, still-empty file —
// is treated as an empty bucket rather than propagated, matching the
// read-path failure policy for the directory region as a whole.
func ReadHeader(r io.ReaderAt) (offset, length uint64) {
	buf := make([]byte, HeaderSize)
	n, err := r.ReadAt(buf, 0)
	if err != nil && n < HeaderSize {
		return HeaderSize, 0
	}
	return DecodeHeader(buf[:n])
}

// ReadBody reads the directory's body (the concatenated descriptor
// encodings, without the trailing END) given the offset and length
// decoded from the header. A read failure yields whatever prefix was
// actually read, so a scan over it simply stops early rather than
// erroring — consistent with the directory's silent-truncation policy.
func ReadBody(r io.ReaderAt, offset, length uint64) []byte {
	if length == 0 {
		return nil
	}
	buf := make([]byte, length)
	n, err := r.ReadAt(buf, int64(offset))
	if err != nil {
		return buf[:n]
	}
	return buf
}

// WriteDirectory commits a new directory: it writes body‖END at offset,
// then overwrites the header at byte 0 with the encoded (offset, len(body))
// pair. The header write is the commit point — everything written before
// it is invisible to a reader that has not yet re-read the header.
func WriteDirectory(w io.WriterAt, offset uint64, body []byte) error {
	framed := make([]byte, 0, len(body)+1)
	framed = append(framed, body...)
	framed = append(framed, End)

	if _, err := w.WriteAt(framed, int64(offset)); err != nil {
		return err
	}

	header := EncodeHeader(offset, uint64(len(body)))
	_, err := w.WriteAt(header, 0)
	return err
}
