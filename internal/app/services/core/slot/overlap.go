package slot

import "clinic-booking-service/internal/app/models"

// ExistingAppointment is the part of a booked appointment the engine reads.
// Callers pass appointments already narrowed to one doctor and one date.
type ExistingAppointment struct {
	ID              string
	ScheduledTime   string
	DurationMinutes int
	Status          models.AppointmentStatus
}

// ExistingFromAppointments projects store records onto the engine's view.
func ExistingFromAppointments(appointments []models.Appointment) []ExistingAppointment {
	out := make([]ExistingAppointment, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, ExistingAppointment{
			ID:              a.ID,
			ScheduledTime:   a.ScheduledTime,
			DurationMinutes: a.DurationMinutes,
			Status:          a.Status,
		})
	}
	return out
}

// interval places the appointment on the day's timeline, clipping at midnight.
func (a ExistingAppointment) interval() (TimeInterval, bool) {
	start, err := ParseClock(a.ScheduledTime)
	if err != nil || a.DurationMinutes <= 0 {
		return TimeInterval{}, false
	}
	end := start + a.DurationMinutes
	if end > MinutesPerDay {
		end = MinutesPerDay
	}
	return TimeInterval{Start: start, End: end}, true
}

// FindConflict returns the first non-cancelled appointment whose interval
// overlaps candidate.
func FindConflict(candidate TimeInterval, appointments []ExistingAppointment) (ExistingAppointment, bool) {
	for _, a := range appointments {
		if a.Status == models.AppointmentStatusCancelled {
			continue
		}
		iv, ok := a.interval()
		if !ok {
			continue
		}
		if candidate.Overlaps(iv) {
			return a, true
		}
	}
	return ExistingAppointment{}, false
}
