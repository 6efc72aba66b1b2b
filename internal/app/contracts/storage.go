package contracts

import "context"

type DiagnosisArchive interface {
	// StoreDiagnosis uploads the diagnosis text and returns the object reference
	// the clinic API records on the appointment.
	StoreDiagnosis(ctx context.Context, appointmentID, diagnosis string) (string, error)
}
