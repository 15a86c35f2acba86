//go:build unix

package logslice

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps size bytes of f as a read-only shared mapping. Pages are
// faulted in on demand, so mapping a terabyte file is cheap until the
// search actually reads from it.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
