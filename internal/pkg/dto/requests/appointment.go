package requests

type CreateAppointment struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	PatientID       string `json:"patientId" validate:"required"`
	FacilityID      string `json:"facilityId" validate:"required"`
	Date            string `json:"date" validate:"required,date"`
	Time            string `json:"time" validate:"required,clock"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,gt=0"`
	Notes           string `json:"notes" validate:"max=2000"`
}

type UpdateAppointmentStatus struct {
	Status             string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled NoShow"`
	Diagnosis          string `json:"diagnosis" validate:"max=20000"`
	CancellationReason string `json:"cancellationReason" validate:"max=2000"`
}
