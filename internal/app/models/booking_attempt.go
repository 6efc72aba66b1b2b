package models

import "time"

// BookingAttempt journals one submission and the verdict it received.
type BookingAttempt struct {
	ID                       string    `json:"id" bson:"_id"`
	RequestID                string    `json:"requestId" bson:"requestId"`
	DoctorID                 string    `json:"doctorId" bson:"doctorId"`
	PatientID                string    `json:"patientId" bson:"patientId"`
	Date                     string    `json:"date" bson:"date"`
	Time                     string    `json:"time" bson:"time"`
	DurationMinutes          int       `json:"durationMinutes" bson:"durationMinutes"`
	Accepted                 bool      `json:"accepted" bson:"accepted"`
	ReasonCode               string    `json:"reasonCode,omitempty" bson:"reasonCode,omitempty"`
	ConflictingAppointmentID string    `json:"conflictingAppointmentId,omitempty" bson:"conflictingAppointmentId,omitempty"`
	AppointmentID            string    `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	RecordedAt               time.Time `json:"recordedAt" bson:"recordedAt"`
}
