package contracts

import (
	"clinic-booking-service/internal/app/models"
	"context"
)

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event *models.AppointmentEvent) error
}
