// Package bufpool provides a pooled byte-slice allocator used by the
// payload reader, so that list/find scans over many descriptors don't
// allocate a fresh read buffer per key‖value read.
package bufpool

import "sync"

var pool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 4096)
	},
}

// Get returns a byte slice of length size from the pool.
func Get(size int) []byte {
	buf := pool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2)
	}
	return buf[:size]
}

// Release returns buf to the pool for reuse.
func Release(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	pool.Put(buf[:0])
}
