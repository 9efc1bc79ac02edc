package utils

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockRegex = regexp.MustCompile(constvars.RegexClockHHMM)

// IsValidClock reports whether s is a strict HH:MM 24-hour clock string.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// ParseClockToMinutes converts an HH:MM string to minutes since midnight.
func ParseClockToMinutes(s string) (int, error) {
	if !clockRegex.MatchString(s) {
		return 0, fmt.Errorf("clock string %q does not match HH:MM", s)
	}
	parts := strings.Split(s, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m, nil
}

// MinutesToClock is the inverse of ParseClockToMinutes.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CombineDateTime combines a YYYY-MM-DD date with an HH:MM clock into a local instant.
func CombineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout+" "+constvars.ClockLayout, date+" "+clock, time.Local)
}

// WeekdayKey returns the lowercase weekday name used as the schedule map key.
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
