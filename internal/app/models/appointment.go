package models

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "NoShow"
)

// Appointment is the record owned by the clinic API once a booking is accepted.
type Appointment struct {
	ID                 string            `json:"id"`
	PatientID          string            `json:"patientId"`
	DoctorID           string            `json:"doctorId"`
	FacilityID         string            `json:"facilityId"`
	Date               string            `json:"date"`
	ScheduledTime      string            `json:"scheduledTime"`
	DurationMinutes    int               `json:"durationMinutes"`
	Status             AppointmentStatus `json:"status"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	DiagnosisRef       string            `json:"diagnosisRef,omitempty"`
}

// BookingRequest is the payload handed to the clinic API on submission.
type BookingRequest struct {
	DoctorID        string `json:"doctorId"`
	PatientID       string `json:"patientId"`
	FacilityID      string `json:"facilityId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Notes           string `json:"notes,omitempty"`
	IdempotencyKey  string `json:"-"`
}

type AppointmentStatusUpdate struct {
	Status             AppointmentStatus `json:"status"`
	DiagnosisRef       string            `json:"diagnosisRef,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
}
