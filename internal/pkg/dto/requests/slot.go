package requests

type ValidateSlot struct {
	Date            string `json:"date" validate:"required,date"`
	Time            string `json:"time" validate:"required,clock"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,gt=0"`
}
