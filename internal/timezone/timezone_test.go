package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Europe/Berlin", Location("Europe/Berlin").String())
	assert.Equal(t, Default(), Location("Not/AZone").String())
	assert.Equal(t, Default(), Location("").String())
}

func TestSetDefault_IgnoresInvalid(t *testing.T) {
	before := Default()
	SetDefault("Nowhere/Special")
	assert.Equal(t, before, Default())

	SetDefault("UTC")
	defer SetDefault(before)
	assert.Equal(t, "UTC", Default())
}

func TestAt(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got := At("UTC", date, 9*60+30)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), got)

	end := At("UTC", date, 1440)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), end)
}
