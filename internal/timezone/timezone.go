package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var (
	mu       sync.RWMutex
	fallback = DefaultTimezone
)

// SetDefault replaces the zone used when a clinic has none (or an invalid one).
// Invalid names are ignored.
func SetDefault(tz string) {
	if !IsValid(tz) {
		return
	}
	mu.Lock()
	fallback = tz
	mu.Unlock()
}

func Default() string {
	mu.RLock()
	defer mu.RUnlock()
	return fallback
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(Default())
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(Default()))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// At is the instant at which minute-of-day `minute` of the calendar date
// `date` happens in zone tz.
func At(tz string, date time.Time, minute int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		0, minute, 0, 0,
		Location(tz),
	)
}
