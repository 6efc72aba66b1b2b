package responses

import "clinic-booking-service/internal/app/models"

type BookingResult struct {
	Accepted                 bool                `json:"accepted"`
	ReasonCode               string              `json:"reasonCode,omitempty"`
	ConflictingAppointmentID string              `json:"conflictingAppointmentId,omitempty"`
	Appointment              *models.Appointment `json:"appointment,omitempty"`
}

type AppointmentTransitions struct {
	AppointmentID     string   `json:"appointmentId"`
	Status            string   `json:"status"`
	Terminal          bool     `json:"terminal"`
	AllowedStatuses   []string `json:"allowedStatuses"`
	DiagnosisRequired bool     `json:"diagnosisRequired"`
}

type BookingAttempt struct {
	ID                       string `json:"id"`
	RequestID                string `json:"requestId,omitempty"`
	PatientID                string `json:"patientId"`
	Time                     string `json:"time"`
	DurationMinutes          int    `json:"durationMinutes"`
	Accepted                 bool   `json:"accepted"`
	ReasonCode               string `json:"reasonCode,omitempty"`
	ConflictingAppointmentID string `json:"conflictingAppointmentId,omitempty"`
	AppointmentID            string `json:"appointmentId,omitempty"`
	RecordedAt               string `json:"recordedAt"`
}
