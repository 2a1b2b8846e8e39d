package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 23, 50, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 8, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysBetween(start, end))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, time.June, d.Month())

	_, err = ParseDate("15-06-2024")
	assert.Error(t, err)
}

func TestParseClockTime(t *testing.T) {
	tm, err := ParseClockTime("8:30 AM")
	require.NoError(t, err)
	assert.Equal(t, 8, tm.Hour())
	assert.Equal(t, 30, tm.Minute())

	tm, err = ParseClockTime("9:05 PM")
	require.NoError(t, err)
	assert.Equal(t, 21, tm.Hour())

	_, err = ParseClockTime("21:05")
	assert.Error(t, err)
}
