// Package lockfile provides the advisory whole-file exclusive lock
// acquired by every mutating bucket operation for the duration of that
// call. It is advisory only: cooperating processes that also flock the
// same file observe it, but nothing prevents a process that ignores
// locking from writing underneath it.
package lockfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Lock blocks until it acquires an exclusive advisory lock on f.
func Lock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

// Unlock releases a lock previously acquired with Lock.
func Unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
