package appointments

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
)

// timeWindow is a half-open [Start, End) interval in minutes since midnight.
type timeWindow struct {
	Start int
	End   int
}

func (w timeWindow) Overlaps(other timeWindow) bool {
	return w.Start < other.End && w.End > other.Start
}

// normalizeRequestedWindow resolves the requested appointment window to a
// canonical (start, end) clock pair. Explicit startTime wins; the legacy
// single appointmentTime field implies a 30-minute slot. An explicit
// startTime without endTime also gets the 30-minute default.
func normalizeRequestedWindow(startTime, endTime, legacyTime string) (start, end string) {
	start = startTime
	if start == "" {
		start = legacyTime
	}
	end = endTime
	if end == "" && start != "" && utils.IsValidClock(start) {
		startMinutes, _ := utils.ParseClockToMinutes(start)
		end = utils.MinutesToClock(startMinutes + constvars.SlotDurationInMinutes)
	}
	return start, end
}

// effectiveWindow converts a stored appointment to its minute window.
// Legacy records without endTime occupy startTime plus 30 minutes.
func effectiveWindow(appointment *models.Appointment) (timeWindow, bool) {
	start := appointment.StartTime
	if start == "" {
		start = appointment.AppointmentTime
	}
	startMinutes, err := utils.ParseClockToMinutes(start)
	if err != nil {
		return timeWindow{}, false
	}
	endMinutes := startMinutes + constvars.SlotDurationInMinutes
	if appointment.EndTime != "" {
		if parsed, err := utils.ParseClockToMinutes(appointment.EndTime); err == nil {
			endMinutes = parsed
		}
	}
	return timeWindow{Start: startMinutes, End: endMinutes}, true
}

// workingWindow resolves the doctor's working hours for the weekday of the
// given date. Doctors with no schedule entry for the day work the default
// 09:00-17:00 window. A schedule entry with available=false means the day
// off; ok is false in that case.
func workingWindow(doctor *models.User, date string) (window timeWindow, clockStart, clockEnd string, ok bool) {
	clockStart = constvars.DefaultWorkingHoursStart
	clockEnd = constvars.DefaultWorkingHoursEnd

	day, err := utils.CombineDateTime(date, "00:00")
	if err != nil {
		return timeWindow{}, "", "", false
	}
	if entry, found := doctor.Schedule[utils.WeekdayKey(day)]; found {
		if !entry.Available {
			return timeWindow{}, "", "", false
		}
		if entry.StartTime != "" {
			clockStart = entry.StartTime
		}
		if entry.EndTime != "" {
			clockEnd = entry.EndTime
		}
	}

	startMinutes, err := utils.ParseClockToMinutes(clockStart)
	if err != nil {
		return timeWindow{}, "", "", false
	}
	endMinutes, err := utils.ParseClockToMinutes(clockEnd)
	if err != nil {
		return timeWindow{}, "", "", false
	}
	return timeWindow{Start: startMinutes, End: endMinutes}, clockStart, clockEnd, true
}

// freeSlots enumerates 30-minute slots inside the working window that do not
// overlap any booked appointment. A trailing remainder shorter than a full
// slot is dropped.
func freeSlots(working timeWindow, booked []timeWindow) []timeWindow {
	var slots []timeWindow
	for start := working.Start; start+constvars.SlotDurationInMinutes <= working.End; start += constvars.SlotDurationInMinutes {
		slot := timeWindow{Start: start, End: start + constvars.SlotDurationInMinutes}
		free := true
		for _, b := range booked {
			if slot.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, slot)
		}
	}
	return slots
}

// bookedWindows maps stored appointments to their effective minute windows,
// skipping records whose clock fields cannot be parsed.
func bookedWindows(appointments []models.Appointment) []timeWindow {
	windows := make([]timeWindow, 0, len(appointments))
	for i := range appointments {
		if w, ok := effectiveWindow(&appointments[i]); ok {
			windows = append(windows, w)
		}
	}
	return windows
}
