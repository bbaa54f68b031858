package pkg

import (
	"bytes"
	"errors"
)

// Aggregate folds every line of data[c.Start:c.End] into a new table. The
// table's keys alias data.
func Aggregate(data []byte, c Chunk) (*StationTable, error) {
	table := NewStationTable()
	block := data[c.Start:c.End]
	off := c.Start

	for len(block) > 0 {
		line := block
		m := bytes.IndexByte(block, '\n')
		if m >= 0 {
			line = block[:m]
			block = block[m+1:]
		} else {
			block = nil
		}

		key, val, err := SplitParse(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Offset = off
			}
			return nil, err
		}
		table.Add(key, val)
		off += m + 1
	}

	return table, nil
}
