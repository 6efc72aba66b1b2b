package models

// WeeklyScheduleRow is a doctor's recurring working hours for one weekday as
// delivered by the clinic API. DayOfWeek is an English weekday name and the
// times are facility-local HH:mm:ss values.
type WeeklyScheduleRow struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Note      string `json:"note,omitempty"`
}

// TreatmentCapacity governs slot granularity. MaxPatientsPerDay and IsActive
// are carried for display and are not enforced when generating slots.
type TreatmentCapacity struct {
	SessionDurationMinutes int  `json:"sessionDurationMinutes"`
	MaxPatientsPerDay      int  `json:"maxPatientsPerDay"`
	IsActive               bool `json:"isActive"`
}

type DoctorRef struct {
	ID string `json:"id"`
}
