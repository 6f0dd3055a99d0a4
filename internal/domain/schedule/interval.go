package schedule

import "fmt"

// MinutesPerDay is the exclusive upper bound of a minute-of-day value.
const MinutesPerDay = 1440

// Interval is a half-open span [Start, End) in minutes of the day.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End)
}

// Valid reports whether 0 <= Start < End <= 1440.
func (i Interval) Valid() bool {
	return i.Start >= 0 && i.Start < i.End && i.End <= MinutesPerDay
}

// Overlaps reports whether a and b share time. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether inner lies entirely within outer.
func Contains(outer, inner Interval) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

func Length(a Interval) int {
	return a.End - a.Start
}

// Clock formats a minute-of-day as "15:04". 1440 renders as "24:00".
func Clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
