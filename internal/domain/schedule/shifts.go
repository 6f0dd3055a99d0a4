package schedule

import (
	"fmt"
	"strings"
)

// ShiftConflict names one violation found in a shift set. Indexes refer to
// the shift set after sorting by start; Second is nil when the interval
// itself is malformed.
type ShiftConflict struct {
	Index  int       `json:"index"`
	First  Interval  `json:"first"`
	Second *Interval `json:"second,omitempty"`
	Reason string    `json:"reason"`
}

// ShiftSetError is returned by ValidateShifts.
type ShiftSetError struct {
	Conflicts []ShiftConflict
}

func (e *ShiftSetError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		if c.Second != nil {
			parts = append(parts, fmt.Sprintf("%s %s %s", c.First, c.Reason, *c.Second))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", c.First, c.Reason))
	}
	return "shifts conflict: " + strings.Join(parts, "; ")
}

// SortShifts returns a copy of shifts ordered by start.
func SortShifts(shifts []Interval) []Interval {
	return sortedCopy(shifts)
}

// ValidateShifts checks that every shift is a well-formed interval and that,
// once sorted by start, each shift ends no later than the next one begins.
// It reports every violation, not just the first.
func ValidateShifts(shifts []Interval) error {
	sorted := sortedCopy(shifts)

	var conflicts []ShiftConflict
	for i, s := range sorted {
		if !s.Valid() {
			conflicts = append(conflicts, ShiftConflict{
				Index:  i,
				First:  s,
				Reason: "is not a valid interval",
			})
		}
		if i+1 < len(sorted) && s.End > sorted[i+1].Start {
			next := sorted[i+1]
			conflicts = append(conflicts, ShiftConflict{
				Index:  i,
				First:  s,
				Second: &next,
				Reason: "overlaps",
			})
		}
	}

	if len(conflicts) > 0 {
		return &ShiftSetError{Conflicts: conflicts}
	}
	return nil
}
