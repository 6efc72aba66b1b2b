package slot

import (
	"clinic-booking-service/internal/app/models"
	"time"
)

type ReasonCode string

const (
	ReasonNoScheduleForDay    ReasonCode = "NO_SCHEDULE_FOR_DAY"
	ReasonOutsideWorkingHours ReasonCode = "OUTSIDE_WORKING_HOURS"
	ReasonTimeConflict        ReasonCode = "TIME_CONFLICT"
	ReasonServerConflict      ReasonCode = "SERVER_CONFLICT"
	ReasonInvalidRequest      ReasonCode = "INVALID_REQUEST"
)

// Verdict is the accept/reject outcome for one requested slot.
type Verdict struct {
	Accepted                 bool       `json:"accepted"`
	ReasonCode               ReasonCode `json:"reasonCode,omitempty"`
	ConflictingAppointmentID string     `json:"conflictingAppointmentId,omitempty"`
}

func Accept() Verdict {
	return Verdict{Accepted: true}
}

func Reject(reason ReasonCode) Verdict {
	return Verdict{Accepted: false, ReasonCode: reason}
}

// BookingCandidate is the date, start time and length a user picked.
type BookingCandidate struct {
	Date            time.Time
	Time            string
	DurationMinutes int
}

// ValidateBooking re-checks a requested slot against the day's schedule and
// the current appointment snapshot. It never fails; every outcome is a Verdict.
func ValidateBooking(candidate BookingCandidate, rows []models.WeeklyScheduleRow, appointments []ExistingAppointment) Verdict {
	hours, ok := ResolveWorkingHours(candidate.Date, rows)
	if !ok {
		return Reject(ReasonNoScheduleForDay)
	}

	start, err := ParseClock(candidate.Time)
	if err != nil || candidate.DurationMinutes <= 0 {
		return Reject(ReasonInvalidRequest)
	}
	requested := TimeInterval{Start: start, End: start + candidate.DurationMinutes}

	if !hours.Contains(requested) {
		return Reject(ReasonOutsideWorkingHours)
	}

	if conflict, found := FindConflict(requested, appointments); found {
		v := Reject(ReasonTimeConflict)
		v.ConflictingAppointmentID = conflict.ID
		return v
	}
	return Accept()
}
