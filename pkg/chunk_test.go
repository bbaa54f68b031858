package pkg_test

import (
	"bytes"
	"fmt"
	"testing"

	"onebrc/pkg"
)

func checkChunks(t *testing.T, data []byte, n int, chunks []pkg.Chunk) {
	t.Helper()

	if len(chunks) != n {
		t.Fatalf("PlanChunks(n=%d) returned %d chunks", n, len(chunks))
	}

	var rebuilt []byte
	prev := 0
	for i, c := range chunks {
		if c.Start != prev || c.End < c.Start {
			t.Fatalf("chunk %d = %+v does not follow %d", i, c, prev)
		}
		if i < n-1 && c.End > 0 && c.End < len(data) && data[c.End-1] != '\n' {
			t.Errorf("chunk %d = %+v splits a line", i, c)
		}
		rebuilt = append(rebuilt, data[c.Start:c.End]...)
		prev = c.End
	}

	if prev != len(data) {
		t.Errorf("last chunk ends at %d, want %d", prev, len(data))
	}
	if !bytes.Equal(rebuilt, data) {
		t.Errorf("chunks do not reconstruct the input")
	}
}

func TestPlanChunks(t *testing.T) {
	t.Parallel()

	data := []byte("Hamburg;12.0\nBulawayo;8.9\nPalembang;38.8\nSt. John's;15.2\nCracow;12.6\nBridgetown;26.9\nIstanbul;6.2\nRoseau;34.4\nConakry;31.2\nIstanbul;23.0")
	lines := bytes.Count(data, []byte{'\n'}) + 1

	for n := 1; n <= lines+3; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()
			checkChunks(t, data, n, pkg.PlanChunks(data, n))
		})
	}
}

func TestPlanChunks_TrailingNewline(t *testing.T) {
	t.Parallel()

	data := []byte("A;1.0\nB;-2.5\nA;3.0\n")
	for n := 1; n <= 8; n++ {
		checkChunks(t, data, n, pkg.PlanChunks(data, n))
	}
}

func TestPlanChunks_SmallInput(t *testing.T) {
	t.Parallel()

	data := []byte("A;1.0\n")
	chunks := pkg.PlanChunks(data, 16)
	checkChunks(t, data, 16, chunks)

	var nonEmpty int
	for _, c := range chunks {
		if c.Len() > 0 {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Errorf("got %d non-empty chunks, want 1", nonEmpty)
	}
}

func TestPlanChunks_Empty(t *testing.T) {
	t.Parallel()

	chunks := pkg.PlanChunks(nil, 4)
	checkChunks(t, nil, 4, chunks)
}

func TestPlanChunks_ZeroWorkers(t *testing.T) {
	t.Parallel()

	data := []byte("A;1.0\n")
	chunks := pkg.PlanChunks(data, 0)
	checkChunks(t, data, 1, chunks)
}
