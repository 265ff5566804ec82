// Package rafile wraps an *os.File as the byte-oriented random-access
// file the bucket engine is specified against: open-or-create,
// read-at-offset, write-at-offset, flush, close.
package rafile

import (
	"fmt"
	"io"
	"os"
)

// File wraps an os.File for bucket I/O.
//
// Thread-safety: not thread-safe. A bucket handle (and therefore a
// File) is single-owner, per the concurrency model.
type File struct {
	f *os.File
}

// CreateMode controls what Open does when the target path does not yet
// exist.
type CreateMode int

const (
	// CreateIfMissing opens the file if it exists, or creates it
	// (empty) if it does not. This is the default bucket-opening mode.
	CreateIfMissing CreateMode = iota

	// CreateExclusive creates a new file and fails if one already
	// exists at the path.
	CreateExclusive
)

// Open opens path for read-write access, creating it per mode if it
// does not already exist.
func Open(path string, mode CreateMode) (*File, error) {
	flags := os.O_RDWR
	switch mode {
	case CreateIfMissing:
		flags |= os.O_CREATE
	case CreateExclusive:
		flags |= os.O_CREATE | os.O_EXCL
	default:
		return nil, fmt.Errorf("rafile: invalid create mode %d", mode)
	}

	f, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return nil, err
	}

	return &File{f: f}, nil
}

// ReadAt implements io.ReaderAt.
func (rf *File) ReadAt(p []byte, off int64) (int, error) {
	if rf.f == nil {
		return 0, fmt.Errorf("rafile: closed")
	}
	return rf.f.ReadAt(p, off)
}

// WriteAt implements io.WriterAt.
func (rf *File) WriteAt(p []byte, off int64) (int, error) {
	if rf.f == nil {
		return 0, fmt.Errorf("rafile: closed")
	}
	n, err := rf.f.WriteAt(p, off)
	if err != nil {
		return n, fmt.Errorf("write at offset %d: %w", off, err)
	}
	if n != len(p) {
		return n, fmt.Errorf("incomplete write at offset %d: wrote %d of %d bytes", off, n, len(p))
	}
	return n, nil
}

// Flush commits all writes to stable storage.
func (rf *File) Flush() error {
	if rf.f == nil {
		return fmt.Errorf("rafile: closed")
	}
	return rf.f.Sync()
}

// Close closes the underlying file. It does not flush first.
func (rf *File) Close() error {
	if rf.f == nil {
		return nil
	}
	err := rf.f.Close()
	rf.f = nil
	return err
}

// OSFile returns the underlying *os.File, primarily so the lockfile
// package can flock its descriptor.
func (rf *File) OSFile() *os.File {
	return rf.f
}

var (
	_ io.ReaderAt = (*File)(nil)
	_ io.WriterAt = (*File)(nil)
)
