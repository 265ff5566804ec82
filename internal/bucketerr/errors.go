// Package bucketerr provides the contextual error type used across the
// bucket engine: every mutating operation wraps the underlying I/O
// failure with the operation name and the bucket path before returning
// it to the caller.
package bucketerr

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by operations attempted on a closed bucket.
var ErrClosed = errors.New("blockbucket: bucket is closed")

// BucketError wraps an underlying error with the operation and file that
// produced it.
type BucketError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *BucketError) Error() string {
	return fmt.Sprintf("blockbucket: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *BucketError) Unwrap() error {
	return e.Err
}

// Wrap returns a *BucketError describing a failure of op against path.
// It returns nil when cause is nil, so callers can write
// `return bucketerr.Wrap("set", path, err)` unconditionally.
func Wrap(op, path string, cause error) error {
	if cause == nil {
		return nil
	}
	return &BucketError{Op: op, Path: path, Err: cause}
}
