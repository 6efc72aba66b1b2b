package slot

import (
	"clinic-booking-service/internal/app/models"
	"time"
)

// GenerateSlotIntervals enumerates the session-length intervals of the day's
// working hours that do not collide with an existing appointment, in ascending
// order. Conflicting steps are skipped, never re-aligned.
func GenerateSlotIntervals(date time.Time, rows []models.WeeklyScheduleRow, capacity models.TreatmentCapacity, appointments []ExistingAppointment) []TimeInterval {
	out := []TimeInterval{}
	step := capacity.SessionDurationMinutes
	if step <= 0 {
		return out
	}
	hours, ok := ResolveWorkingHours(date, rows)
	if !ok {
		return out
	}
	for current := hours.Start; current+step <= hours.End; current += step {
		candidate := TimeInterval{Start: current, End: current + step}
		if _, conflict := FindConflict(candidate, appointments); conflict {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// GenerateSlots returns the bookable slot start times of date as HH:mm strings.
// The result is never nil so it encodes as an empty JSON array.
func GenerateSlots(date time.Time, rows []models.WeeklyScheduleRow, capacity models.TreatmentCapacity, appointments []ExistingAppointment) []string {
	intervals := GenerateSlotIntervals(date, rows, capacity, appointments)
	out := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, FormatClock(iv.Start))
	}
	return out
}
