//go:build windows

package logslice

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmapFile maps size bytes of f read-only via a pagefile-backed section.
// The mapping handle is closed immediately after MapViewOfFile; the view
// keeps the section alive until UnmapViewOfFile.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	h, err := windows.CreateFileMapping(
		windows.Handle(f.Fd()),
		nil,
		windows.PAGE_READONLY,
		uint32(size>>32),
		uint32(size),
		nil,
	)
	if err != nil {
		return nil, err
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func munmap(data []byte) error {
	return windows.UnmapViewOfFile(uintptr(unsafe.Pointer(unsafe.SliceData(data))))
}
