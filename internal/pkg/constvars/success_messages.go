package constvars

const (
	ResponseUnknown = "unknown"

	GetAvailableSlotsSuccessMessage       = "available slots retrieved successfully"
	ValidateBookingSuccessMessage         = "booking validated"
	BookingAcceptedMessage                = "appointment booked successfully"
	BookingRejectedMessage                = "booking rejected"
	GetAllowedTransitionsSuccessMessage   = "allowed transitions retrieved successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"
	GetBookingAttemptsSuccessMessage      = "booking attempts retrieved successfully"
)
