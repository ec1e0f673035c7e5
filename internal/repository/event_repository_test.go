package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindowUsesDayLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, kolkata)

	start, end := dayWindow(day)

	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, kolkata), start)
	assert.Equal(t, time.Date(2026, 1, 15, 23, 59, 59, 999_000_000, kolkata), end)

	// an early-morning local event falls inside the window even though it is
	// still the previous day in UTC
	earlyMorning := time.Date(2026, 1, 15, 2, 0, 0, 0, kolkata)
	assert.Equal(t, 14, earlyMorning.UTC().Day())
	assert.False(t, earlyMorning.Before(start))
	assert.False(t, earlyMorning.After(end))
}

func TestDayWindowMidDayInput(t *testing.T) {
	day := time.Date(2026, 6, 1, 15, 30, 45, 0, time.Local)

	start, end := dayWindow(day)

	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 6, 1, 23, 59, 59, 999_000_000, time.Local), end)
}
