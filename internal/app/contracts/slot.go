package contracts

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type SlotUsecase interface {
	ListAvailableSlots(ctx context.Context, doctorID string, date time.Time) (*responses.AvailableSlots, error)
	ValidateBooking(ctx context.Context, doctorID string, request *requests.ValidateSlot) (*responses.SlotVerdict, error)
	InvalidateSlots(ctx context.Context, doctorID string, date time.Time) error
}
