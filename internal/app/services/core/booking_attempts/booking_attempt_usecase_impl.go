package bookingAttempts

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type bookingAttemptUsecase struct {
	Repository contracts.BookingAttemptRepository
	Log        *zap.Logger
}

func NewBookingAttemptUsecase(repository contracts.BookingAttemptRepository, logger *zap.Logger) contracts.BookingAttemptUsecase {
	return &bookingAttemptUsecase{
		Repository: repository,
		Log:        logger,
	}
}

func (uc *bookingAttemptUsecase) FindByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]responses.BookingAttempt, error) {
	requestID := utils.RequestIDFromContext(ctx)
	dateStr := date.Format(constvars.DateLayout)
	uc.Log.Info("bookingAttemptUsecase.FindByDoctorAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, dateStr),
	)

	attempts, err := uc.Repository.FindByDoctorAndDate(ctx, doctorID, dateStr)
	if err != nil {
		uc.Log.Error("bookingAttemptUsecase.FindByDoctorAndDate error calling Repository.FindByDoctorAndDate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.BookingAttempt, 0, len(attempts))
	for _, attempt := range attempts {
		result = append(result, responses.BookingAttempt{
			ID:                       attempt.ID,
			RequestID:                attempt.RequestID,
			PatientID:                attempt.PatientID,
			Time:                     attempt.Time,
			DurationMinutes:          attempt.DurationMinutes,
			Accepted:                 attempt.Accepted,
			ReasonCode:               attempt.ReasonCode,
			ConflictingAppointmentID: attempt.ConflictingAppointmentID,
			AppointmentID:            attempt.AppointmentID,
			RecordedAt:               attempt.RecordedAt.UTC().Format(time.RFC3339),
		})
	}

	uc.Log.Info("bookingAttemptUsecase.FindByDoctorAndDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result)),
	)
	return result, nil
}
