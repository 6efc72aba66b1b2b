package responses

type AvailableSlots struct {
	DoctorID               string   `json:"doctorId"`
	Date                   string   `json:"date"`
	WorkingHours           string   `json:"workingHours,omitempty"`
	SessionDurationMinutes int      `json:"sessionDurationMinutes"`
	MaxPatientsPerDay      int      `json:"maxPatientsPerDay"`
	CapacityActive         bool     `json:"capacityActive"`
	Slots                  []string `json:"slots"`
	CacheKey               string   `json:"cacheKey"`
}

type SlotVerdict struct {
	DoctorID                 string `json:"doctorId"`
	Date                     string `json:"date"`
	Time                     string `json:"time"`
	DurationMinutes          int    `json:"durationMinutes"`
	Accepted                 bool   `json:"accepted"`
	ReasonCode               string `json:"reasonCode,omitempty"`
	ConflictingAppointmentID string `json:"conflictingAppointmentId,omitempty"`
}
