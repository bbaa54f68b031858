package pkg

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

type HashKey = uint64

func Hash(key []byte) HashKey {
	return xxh3.Hash(key)
}

// initial capacity; the table doubles at 50% load
const tableSize = 1 << 8

type tableEntry struct {
	Hash HashKey
	Key  []byte
	Stat StationStat
}

// StationTable is an open addressing (linear probing) map from station name
// to StationStat, owned by a single worker. Keys are not copied: they alias
// whatever buffer they were added from.
type StationTable struct {
	entries []tableEntry
	mask    uint64
	n       int
}

func NewStationTable() *StationTable {
	return &StationTable{
		entries: make([]tableEntry, tableSize),
		mask:    tableSize - 1,
	}
}

func (t *StationTable) Len() int { return t.n }

func (t *StationTable) Add(key []byte, value int32) {
	if key == nil {
		key = []byte{}
	}
	h := Hash(key)
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		e := &t.entries[i]
		if e.Key == nil {
			*e = tableEntry{h, key, NewStationStat(value)}
			t.n++
			if t.n*2 > len(t.entries) {
				t.grow()
			}
			return
		}
		if e.Hash == h && bytes.Equal(e.Key, key) {
			e.Stat.Add(value)
			return
		}
	}
}

func (t *StationTable) Get(key []byte) (StationStat, bool) {
	h := Hash(key)
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		e := &t.entries[i]
		if e.Key == nil {
			return StationStat{}, false
		}
		if e.Hash == h && bytes.Equal(e.Key, key) {
			return e.Stat, true
		}
	}
}

// Each calls f for every entry in table order, which is unspecified.
func (t *StationTable) Each(f func(key []byte, stat *StationStat)) {
	for i := range t.entries {
		if e := &t.entries[i]; e.Key != nil {
			f(e.Key, &e.Stat)
		}
	}
}

func (t *StationTable) grow() {
	old := t.entries
	t.entries = make([]tableEntry, len(old)*2)
	t.mask = uint64(len(t.entries) - 1)
	for _, e := range old {
		if e.Key == nil {
			continue
		}
		i := e.Hash & t.mask
		for t.entries[i].Key != nil {
			i = (i + 1) & t.mask
		}
		t.entries[i] = e
	}
}
