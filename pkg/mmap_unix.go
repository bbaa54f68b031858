//go:build unix

package pkg

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmapFile(file *os.File, size int64) ([]byte, error) {
	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	// hints only
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
	return data, nil
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
