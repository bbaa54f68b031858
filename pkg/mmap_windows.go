//go:build windows

package pkg

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

func mmapFile(file *os.File, size int64) ([]byte, error) {
	low, high := uint32(size), uint32(size>>32)
	fMap, err := syscall.CreateFileMapping(syscall.Handle(file.Fd()), nil, syscall.PAGE_READONLY, high, low, nil)
	if err != nil {
		return nil, fmt.Errorf("syscall CreateFileMapping: %w", err)
	}
	defer syscall.CloseHandle(fMap)

	ptr, err := syscall.MapViewOfFile(fMap, syscall.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, fmt.Errorf("syscall MapViewOfFile: %w", err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size), nil
}

func munmap(data []byte) error {
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(unsafe.SliceData(data))))
}
