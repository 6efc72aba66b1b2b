package models

import "time"

// AppointmentEvent is published to the message broker after a successful
// booking or status change.
type AppointmentEvent struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Source         string            `json:"source"`
	OccurredAt     time.Time         `json:"occurredAt"`
	AppointmentID  string            `json:"appointmentId"`
	DoctorID       string            `json:"doctorId"`
	PatientID      string            `json:"patientId"`
	Date           string            `json:"date"`
	ScheduledTime  string            `json:"scheduledTime"`
	PreviousStatus AppointmentStatus `json:"previousStatus,omitempty"`
	Status         AppointmentStatus `json:"status"`
}
