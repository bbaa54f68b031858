package pkg

import "math"

// StationStat is the running min/mean/max of one station, in tenths.
type StationStat struct {
	Min, Max int32
	Sum      int64
	Count    uint64
}

func NewStationStat(value int32) StationStat {
	return StationStat{Min: value, Max: value, Sum: int64(value), Count: 1}
}

func (s *StationStat) Add(value int32) {
	if value < s.Min {
		s.Min = value
	}
	if value > s.Max {
		s.Max = value
	}
	s.Sum += int64(value)
	s.Count++
}

func (s *StationStat) Merge(other *StationStat) {
	if other == nil || other.Count == 0 {
		return
	}
	if s.Count == 0 {
		*s = *other
		return
	}

	s.Min = min(s.Min, other.Min)
	s.Max = max(s.Max, other.Max)
	s.Sum += other.Sum
	s.Count += other.Count
}

// Mean is Sum/Count rounded half away from zero, in tenths.
func (s *StationStat) Mean() int64 {
	if s.Count == 0 {
		return 0
	}
	return int64(math.Round(float64(s.Sum) / float64(s.Count)))
}
