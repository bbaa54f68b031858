package pkg

import (
	"fmt"
	"math"
	"os"
)

// MappedFile is a read-only view of a whole file. Slices taken from Bytes
// are only valid until Close.
type MappedFile struct {
	path  string
	data  []byte
	unmap func([]byte) error
}

func MMapFile(name string) (*MappedFile, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, &IOError{"open", name, err}
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, &IOError{"stat", name, err}
	}

	size := fi.Size()
	if size == 0 {
		return nil, &IOError{"mmap", name, ErrEmptyFile}
	}
	if size < 0 || size > math.MaxInt {
		return nil, &IOError{"mmap", name, fmt.Errorf("file size %d does not fit in memory", size)}
	}

	data, err := mmapFile(file, size)
	if err != nil {
		return nil, &IOError{"mmap", name, err}
	}

	return &MappedFile{path: name, data: data, unmap: munmap}, nil
}

func (m *MappedFile) Bytes() []byte { return m.data }

func (m *MappedFile) Len() int { return len(m.data) }

func (m *MappedFile) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := m.unmap(data); err != nil {
		return &IOError{"munmap", m.path, err}
	}
	return nil
}
