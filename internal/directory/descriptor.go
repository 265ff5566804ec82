// Package directory implements the block descriptor and the directory
// region: the ordered sequence of descriptors that is the bucket's
// authoritative index, plus the 128-byte header that locates it.
package directory

import "github.com/manhavn/blockbucket/internal/varint"

// Sentinel bytes delimit the varint groups inside a descriptor and the
// header. They occupy [250,255], strictly above every byte the varint
// codec can emit, so a decoder never has to guess whether a byte is
// data or structure.
const (
	Start    byte = 250 // terminates a descriptor's start group
	SizeKey  byte = 251 // terminates a descriptor's size_key group
	SumKey   byte = 252 // terminates a descriptor's sum_key group
	SumMD5   byte = 253 // terminates a descriptor's sum_md5 group
	SizeData byte = 254 // terminates a descriptor's size_data group, ends the descriptor
	End      byte = 255 // terminates a header field, or the whole directory region
)

// Descriptor locates and summarises one payload block.
type Descriptor struct {
	Start    uint64 // absolute file offset of key‖value
	SizeKey  uint64 // key length in bytes
	SumKey   uint64 // additive sum of key bytes
	SumMD5   uint64 // additive sum of the key's 16-byte MD5 digest
	SizeData uint64 // value length in bytes
}

// BlockSize is the number of payload bytes this descriptor claims.
func (d Descriptor) BlockSize() uint64 {
	return d.SizeKey + d.SizeData
}

// Encode serialises a descriptor as five sentinel-terminated varint
// groups: start‖START‖size_key‖SIZE_KEY‖sum_key‖SUM_KEY‖sum_md5‖SUM_MD5‖size_data‖SIZE_DATA.
func Encode(d Descriptor) []byte {
	out := make([]byte, 0, 24)
	out = append(out, varint.Encode(d.Start)...)
	out = append(out, Start)
	out = append(out, varint.Encode(d.SizeKey)...)
	out = append(out, SizeKey)
	out = append(out, varint.Encode(d.SumKey)...)
	out = append(out, SumKey)
	out = append(out, varint.Encode(d.SumMD5)...)
	out = append(out, SumMD5)
	out = append(out, varint.Encode(d.SizeData)...)
	out = append(out, SizeData)
	return out
}

// EncodeAll concatenates the encodings of descs in order, yielding the
// directory region's body (without the trailing END sentinel — callers
// writing a directory to disk append that themselves; see WriteDirectory).
func EncodeAll(descs []Descriptor) []byte {
	out := make([]byte, 0, len(descs)*24)
	for _, d := range descs {
		out = append(out, Encode(d)...)
	}
	return out
}
