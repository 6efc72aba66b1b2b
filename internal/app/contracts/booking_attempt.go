package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type BookingAttemptUsecase interface {
	FindByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]responses.BookingAttempt, error)
}

type BookingAttemptRepository interface {
	Record(ctx context.Context, attempt *models.BookingAttempt) error
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.BookingAttempt, error)
}
