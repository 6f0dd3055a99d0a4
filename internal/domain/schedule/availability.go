package schedule

import "sort"

// FreeIntervals subtracts booked time from a doctor's shifts.
//
// Shifts must be pairwise non-overlapping, and so must booked. Booked time is
// subtracted wherever it falls, even when it no longer fits any current
// shift. The result is sorted by start and never contains empty intervals.
func FreeIntervals(shifts, booked []Interval) []Interval {
	shifts = sortedCopy(shifts)
	booked = sortedCopy(booked)

	free := make([]Interval, 0, len(shifts))
	first := 0

	for _, shift := range shifts {
		// booked is sorted by start and non-overlapping, so ends are sorted
		// too: anything ending before this shift ends before every later one.
		for first < len(booked) && booked[first].End <= shift.Start {
			first++
		}

		cursor := shift.Start
		for j := first; j < len(booked) && booked[j].Start < shift.End; j++ {
			b := booked[j]
			if !Overlaps(shift, b) {
				continue
			}
			if b.Start > cursor {
				free = append(free, Interval{Start: cursor, End: b.Start})
			}
			if b.End > cursor {
				cursor = b.End
			}
		}

		if cursor < shift.End {
			free = append(free, Interval{Start: cursor, End: shift.End})
		}
	}

	return free
}

// FirstContaining returns the earliest free interval that contains slot.
func FirstContaining(free []Interval, slot Interval) (Interval, bool) {
	found := false
	var best Interval
	for _, f := range free {
		if !Contains(f, slot) {
			continue
		}
		if !found || f.Start < best.Start {
			best = f
			found = true
		}
	}
	return best, found
}

// LongEnough keeps the intervals that can host a service of the given duration.
// It always returns a non-nil slice.
func LongEnough(free []Interval, duration int) []Interval {
	out := make([]Interval, 0, len(free))
	for _, f := range free {
		if Length(f) >= duration {
			out = append(out, f)
		}
	}
	return out
}

// TotalLength sums the lengths of the given intervals.
func TotalLength(intervals []Interval) int {
	total := 0
	for _, i := range intervals {
		total += Length(i)
	}
	return total
}

func sortedCopy(in []Interval) []Interval {
	out := make([]Interval, len(in))
	copy(out, in)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Start < out[b].Start
	})
	return out
}
