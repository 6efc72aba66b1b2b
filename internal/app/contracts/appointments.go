package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.CreateAppointment) (*responses.BookingResult, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	AllowedTransitions(ctx context.Context, appointmentID string) (*responses.AppointmentTransitions, error)
}

type AppointmentClient interface {
	FindByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, request *models.BookingRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, update *models.AppointmentStatusUpdate) (*models.Appointment, error)
}
