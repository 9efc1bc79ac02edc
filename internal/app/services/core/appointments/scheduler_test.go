package appointments

import (
	"hospital-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestedWindow(t *testing.T) {
	tests := []struct {
		name          string
		startTime     string
		endTime       string
		legacyTime    string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "explicit start and end",
			startTime:     "10:00",
			endTime:       "11:00",
			expectedStart: "10:00",
			expectedEnd:   "11:00",
		},
		{
			name:          "explicit start without end gets default duration",
			startTime:     "10:00",
			expectedStart: "10:00",
			expectedEnd:   "10:30",
		},
		{
			name:          "legacy single time implies thirty minutes",
			legacyTime:    "14:00",
			expectedStart: "14:00",
			expectedEnd:   "14:30",
		},
		{
			name:          "explicit start wins over legacy time",
			startTime:     "09:00",
			endTime:       "09:45",
			legacyTime:    "14:00",
			expectedStart: "09:00",
			expectedEnd:   "09:45",
		},
		{
			name:          "slot crossing the hour boundary",
			legacyTime:    "16:45",
			expectedStart: "16:45",
			expectedEnd:   "17:15",
		},
		{
			name:          "invalid start leaves end empty",
			startTime:     "25:99",
			expectedStart: "25:99",
			expectedEnd:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := normalizeRequestedWindow(tt.startTime, tt.endTime, tt.legacyTime)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := timeWindow{Start: 600, End: 660} // 10:00-11:00

	tests := []struct {
		name     string
		other    timeWindow
		overlaps bool
	}{
		{"identical window", timeWindow{Start: 600, End: 660}, true},
		{"contained window", timeWindow{Start: 615, End: 645}, true},
		{"partial overlap at start", timeWindow{Start: 570, End: 630}, true},
		{"partial overlap at end", timeWindow{Start: 630, End: 690}, true},
		{"touching at end is not overlap", timeWindow{Start: 660, End: 720}, false},
		{"touching at start is not overlap", timeWindow{Start: 540, End: 600}, false},
		{"disjoint before", timeWindow{Start: 480, End: 540}, false},
		{"disjoint after", timeWindow{Start: 720, End: 780}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestEffectiveWindow(t *testing.T) {
	t.Run("uses explicit start and end", func(t *testing.T) {
		window, ok := effectiveWindow(&models.Appointment{StartTime: "10:00", EndTime: "11:00"})
		assert.True(t, ok)
		assert.Equal(t, timeWindow{Start: 600, End: 660}, window)
	})

	t.Run("legacy record without end gets thirty minutes", func(t *testing.T) {
		window, ok := effectiveWindow(&models.Appointment{AppointmentTime: "10:00"})
		assert.True(t, ok)
		assert.Equal(t, timeWindow{Start: 600, End: 630}, window)
	})

	t.Run("unparseable clock is skipped", func(t *testing.T) {
		_, ok := effectiveWindow(&models.Appointment{AppointmentTime: "whenever"})
		assert.False(t, ok)
	})
}

func TestWorkingWindow(t *testing.T) {
	// 2026-09-07 is a Monday.
	const monday = "2026-09-07"

	t.Run("no schedule entry falls back to default hours", func(t *testing.T) {
		doctor := &models.User{}
		window, clockStart, clockEnd, ok := workingWindow(doctor, monday)
		assert.True(t, ok)
		assert.Equal(t, "09:00", clockStart)
		assert.Equal(t, "17:00", clockEnd)
		assert.Equal(t, timeWindow{Start: 540, End: 1020}, window)
	})

	t.Run("custom schedule entry is honored", func(t *testing.T) {
		doctor := &models.User{
			Schedule: map[string]models.DaySchedule{
				"monday": {Available: true, StartTime: "08:00", EndTime: "12:00"},
			},
		}
		window, clockStart, clockEnd, ok := workingWindow(doctor, monday)
		assert.True(t, ok)
		assert.Equal(t, "08:00", clockStart)
		assert.Equal(t, "12:00", clockEnd)
		assert.Equal(t, timeWindow{Start: 480, End: 720}, window)
	})

	t.Run("day marked unavailable", func(t *testing.T) {
		doctor := &models.User{
			Schedule: map[string]models.DaySchedule{
				"monday": {Available: false},
			},
		}
		_, _, _, ok := workingWindow(doctor, monday)
		assert.False(t, ok)
	})

	t.Run("schedule entry for a different weekday does not apply", func(t *testing.T) {
		doctor := &models.User{
			Schedule: map[string]models.DaySchedule{
				"tuesday": {Available: false},
			},
		}
		_, clockStart, _, ok := workingWindow(doctor, monday)
		assert.True(t, ok)
		assert.Equal(t, "09:00", clockStart)
	})
}

func TestFreeSlots(t *testing.T) {
	working := timeWindow{Start: 540, End: 720} // 09:00-12:00

	t.Run("empty day yields every slot", func(t *testing.T) {
		slots := freeSlots(working, nil)
		assert.Len(t, slots, 6)
		assert.Equal(t, timeWindow{Start: 540, End: 570}, slots[0])
		assert.Equal(t, timeWindow{Start: 690, End: 720}, slots[5])
	})

	t.Run("booked slot is excluded", func(t *testing.T) {
		booked := []timeWindow{{Start: 600, End: 630}} // 10:00-10:30
		slots := freeSlots(working, booked)
		assert.Len(t, slots, 5)
		for _, slot := range slots {
			assert.False(t, slot.Overlaps(booked[0]))
		}
	})

	t.Run("long booking shadows several slots", func(t *testing.T) {
		booked := []timeWindow{{Start: 555, End: 645}} // 09:15-10:45
		slots := freeSlots(working, booked)
		assert.Equal(t, []timeWindow{
			{Start: 660, End: 690},
			{Start: 690, End: 720},
		}, slots)
	})

	t.Run("no partial trailing slot", func(t *testing.T) {
		slots := freeSlots(timeWindow{Start: 540, End: 585}, nil) // 09:00-09:45
		assert.Len(t, slots, 1)
		assert.Equal(t, timeWindow{Start: 540, End: 570}, slots[0])
	})

	t.Run("window shorter than a slot", func(t *testing.T) {
		slots := freeSlots(timeWindow{Start: 540, End: 560}, nil)
		assert.Empty(t, slots)
	})
}

func TestBookedWindows(t *testing.T) {
	appointments := []models.Appointment{
		{StartTime: "09:00", EndTime: "10:00"},
		{AppointmentTime: "10:00"},
		{AppointmentTime: "garbage"},
	}
	windows := bookedWindows(appointments)
	assert.Equal(t, []timeWindow{
		{Start: 540, End: 600},
		{Start: 600, End: 630},
	}, windows)
}
