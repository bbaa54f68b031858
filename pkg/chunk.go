package pkg

import "bytes"

// Chunk is the half-open byte range [Start, End) of the input.
type Chunk struct {
	Start, End int
}

func (c Chunk) Len() int { return c.End - c.Start }

// PlanChunks cuts data into exactly n line-aligned chunks of roughly
// len(data)/n bytes. Every chunk but the last ends right after a '\n'; the
// last one ends at len(data). Chunks past the data are empty.
func PlanChunks(data []byte, n int) []Chunk {
	if n < 1 {
		n = 1
	}

	size := len(data)
	ideal := size / n
	chunks := make([]Chunk, n)

	var start int
	for i := range n {
		end := size
		if i < n-1 {
			cut := min(start+ideal, size)
			if nl := bytes.IndexByte(data[cut:], '\n'); nl >= 0 {
				end = cut + nl + 1
			}
		}

		chunks[i] = Chunk{start, end}
		start = end
	}

	return chunks
}
