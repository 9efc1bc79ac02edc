package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClock(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"10am", false},
		{"", false},
		{"09:30:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidClock(tt.input))
		})
	}
}

func TestParseClockToMinutes(t *testing.T) {
	minutes, err := ParseClockToMinutes("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseClockToMinutes("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = ParseClockToMinutes("25:99")
	assert.Error(t, err)
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:30", MinutesToClock(570))
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "23:59", MinutesToClock(1439))
}

func TestCombineDateTime(t *testing.T) {
	instant, err := CombineDateTime("2026-09-07", "14:30")
	assert.NoError(t, err)
	assert.Equal(t, 2026, instant.Year())
	assert.Equal(t, time.September, instant.Month())
	assert.Equal(t, 7, instant.Day())
	assert.Equal(t, 14, instant.Hour())
	assert.Equal(t, 30, instant.Minute())

	_, err = CombineDateTime("07-09-2026", "14:30")
	assert.Error(t, err)
}

func TestWeekdayKey(t *testing.T) {
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", WeekdayKey(monday))
	assert.Equal(t, "sunday", WeekdayKey(monday.AddDate(0, 0, 6)))
}
