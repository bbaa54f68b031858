package pkg_test

import (
	"testing"

	"onebrc/pkg"
)

func statOf(values ...int32) pkg.StationStat {
	s := pkg.NewStationStat(values[0])
	for _, v := range values[1:] {
		s.Add(v)
	}
	return s
}

func merged(stats ...pkg.StationStat) pkg.StationStat {
	var out pkg.StationStat
	for i := range stats {
		out.Merge(&stats[i])
	}
	return out
}

func TestStationStat_Add(t *testing.T) {
	t.Parallel()

	s := statOf(10, -25, 30)
	want := pkg.StationStat{Min: -25, Max: 30, Sum: 15, Count: 3}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
	if m := s.Mean(); m != 5 {
		t.Errorf("Mean() = %d, want 5", m)
	}
}

func TestStationStat_Single(t *testing.T) {
	t.Parallel()

	s := pkg.NewStationStat(-234)
	if s.Min != s.Max || int64(s.Min) != s.Mean() {
		t.Errorf("single value stat %+v has mean %d", s, s.Mean())
	}
}

func TestStationStat_MergeAssociativeCommutative(t *testing.T) {
	t.Parallel()

	a := statOf(10, 30)
	b := statOf(-25)
	c := statOf(999, -999, 0, 5)

	want := statOf(10, 30, -25, 999, -999, 0, 5)
	orders := map[string]pkg.StationStat{
		"(a+b)+c": merged(merged(a, b), c),
		"a+(b+c)": merged(a, merged(b, c)),
		"c+b+a":   merged(c, b, a),
		"b+a+c":   merged(b, a, c),
	}
	for name, got := range orders {
		if got != want {
			t.Errorf("%s = %+v, want %+v", name, got, want)
		}
	}
}

func TestStationStat_MergeAddsOtherSum(t *testing.T) {
	t.Parallel()

	// regression: merging must add the other side, not double itself
	a := statOf(10, 10)
	b := statOf(40)
	a.Merge(&b)
	if a.Sum != 60 || a.Count != 3 {
		t.Errorf("after merge sum=%d count=%d, want 60, 3", a.Sum, a.Count)
	}
}

func TestStationStat_MeanRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values []int32
		want   int64
	}{
		{[]int32{10, 11}, 11},    // 1.05 -> 1.1
		{[]int32{-10, -11}, -11}, // -1.05 -> -1.1
		{[]int32{10, 10, 11}, 10},
		{[]int32{0, -1}, -1},
		{[]int32{1, -1}, 0},
	}
	for _, tt := range tests {
		s := statOf(tt.values...)
		if got := s.Mean(); got != tt.want {
			t.Errorf("Mean(%v) = %d, want %d", tt.values, got, tt.want)
		}
		if got := s.Mean(); got < int64(s.Min) || got > int64(s.Max) {
			t.Errorf("Mean(%v) = %d outside [%d, %d]", tt.values, got, s.Min, s.Max)
		}
	}
}
