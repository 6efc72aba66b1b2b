package appointments

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/slot"
	"clinic-booking-service/internal/app/services/shared/metrics"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockReleaseTimeout = 5 * time.Second

type appointmentUsecase struct {
	SlotUsecase       contracts.SlotUsecase
	AppointmentClient contracts.AppointmentClient
	LockService       contracts.LockerService
	AttemptRepository contracts.BookingAttemptRepository
	EventPublisher    contracts.AppointmentEventPublisher
	DiagnosisArchive  contracts.DiagnosisArchive
	Metrics           *metrics.BookingMetrics
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAppointmentUsecase(
	slotUsecase contracts.SlotUsecase,
	appointmentClient contracts.AppointmentClient,
	lockService contracts.LockerService,
	attemptRepository contracts.BookingAttemptRepository,
	eventPublisher contracts.AppointmentEventPublisher,
	diagnosisArchive contracts.DiagnosisArchive,
	bookingMetrics *metrics.BookingMetrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		SlotUsecase:       slotUsecase,
		AppointmentClient: appointmentClient,
		LockService:       lockService,
		AttemptRepository: attemptRepository,
		EventPublisher:    eventPublisher,
		DiagnosisArchive:  diagnosisArchive,
		Metrics:           bookingMetrics,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

// Book re-validates the requested slot against a fresh appointment snapshot
// and, when it passes, submits it to the clinic API. Submissions for the same
// doctor and date are serialized through a Redis lock; the clinic API still
// has the final word and its 409 becomes SERVER_CONFLICT.
func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.CreateAppointment) (*responses.BookingResult, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf("%s:%s:%s", constvars.RedisKeyBookingLock, request.DoctorID, date.Format(constvars.DateLayout))
	lockTTL := time.Duration(uc.InternalConfig.Booking.LockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(lockKey)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()
		if err := uc.LockService.Unlock(releaseCtx, lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.Book error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	verdict, err := uc.SlotUsecase.ValidateBooking(ctx, request.DoctorID, &requests.ValidateSlot{
		Date:            request.Date,
		Time:            request.Time,
		DurationMinutes: request.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}

	attempt := &models.BookingAttempt{
		ID:              uuid.NewString(),
		RequestID:       requestID,
		DoctorID:        request.DoctorID,
		PatientID:       request.PatientID,
		Date:            verdict.Date,
		Time:            request.Time,
		DurationMinutes: verdict.DurationMinutes,
	}

	if !verdict.Accepted {
		result := &responses.BookingResult{
			ReasonCode:               verdict.ReasonCode,
			ConflictingAppointmentID: verdict.ConflictingAppointmentID,
		}
		uc.finishAttempt(ctx, attempt, result)
		return result, nil
	}

	start, _ := slot.ParseClock(request.Time)
	created, err := uc.AppointmentClient.Create(ctx, &models.BookingRequest{
		DoctorID:        request.DoctorID,
		PatientID:       request.PatientID,
		FacilityID:      request.FacilityID,
		Date:            verdict.Date,
		Time:            slot.FormatClockSeconds(start),
		DurationMinutes: verdict.DurationMinutes,
		Notes:           request.Notes,
		IdempotencyKey:  attempt.ID,
	})
	if err != nil {
		if !errors.Is(err, exceptions.ErrStoreConflict) {
			uc.Log.Error("appointmentUsecase.Book error calling AppointmentClient.Create",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		result := &responses.BookingResult{ReasonCode: string(slot.ReasonServerConflict)}
		uc.invalidateSlots(ctx, request.DoctorID, date)
		uc.finishAttempt(ctx, attempt, result)
		return result, nil
	}

	result := &responses.BookingResult{Accepted: true, Appointment: created}
	attempt.AppointmentID = created.ID
	uc.invalidateSlots(ctx, request.DoctorID, date)
	uc.finishAttempt(ctx, attempt, result)
	uc.publish(ctx, constvars.EventAppointmentBooked, created, "")

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return result, nil
}

// UpdateStatus applies a lifecycle-checked status change. Completing an
// appointment archives the diagnosis first and records its reference.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	current, err := uc.AppointmentClient.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	target := models.AppointmentStatus(request.Status)
	if _, err := Transition(current.Status, target, request.Diagnosis); err != nil {
		uc.Log.Info("appointmentUsecase.UpdateStatus transition rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, ErrDiagnosisRequired) {
			return nil, exceptions.ErrDiagnosisRequired(err)
		}
		return nil, exceptions.ErrTransitionNotAllowed(err, string(current.Status), string(target))
	}

	update := &models.AppointmentStatusUpdate{
		Status:             target,
		CancellationReason: request.CancellationReason,
	}
	if target == models.AppointmentStatusCompleted {
		ref, err := uc.DiagnosisArchive.StoreDiagnosis(ctx, appointmentID, request.Diagnosis)
		if err != nil {
			return nil, err
		}
		update.DiagnosisRef = ref
	}

	updated, err := uc.AppointmentClient.UpdateStatus(ctx, appointmentID, update)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error calling AppointmentClient.UpdateStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Metrics.ObserveTransition(string(current.Status), string(target))

	if target == models.AppointmentStatusCancelled {
		if date, err := utils.ParseDate(current.Date); err == nil {
			uc.invalidateSlots(ctx, current.DoctorID, date)
		}
	}
	uc.publish(ctx, constvars.EventAppointmentStatusChanged, updated, current.Status)

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, string(updated.Status)),
	)
	return updated, nil
}

func (uc *appointmentUsecase) AllowedTransitions(ctx context.Context, appointmentID string) (*responses.AppointmentTransitions, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.AllowedTransitions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	current, err := uc.AppointmentClient.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	next := AllowedTransitions(current.Status)
	allowed := make([]string, 0, len(next))
	for _, status := range next {
		allowed = append(allowed, string(status))
	}
	return &responses.AppointmentTransitions{
		AppointmentID:     current.ID,
		Status:            string(current.Status),
		Terminal:          IsTerminal(current.Status),
		AllowedStatuses:   allowed,
		DiagnosisRequired: CanTransition(current.Status, models.AppointmentStatusCompleted),
	}, nil
}

func (uc *appointmentUsecase) finishAttempt(ctx context.Context, attempt *models.BookingAttempt, result *responses.BookingResult) {
	attempt.Accepted = result.Accepted
	attempt.ReasonCode = result.ReasonCode
	attempt.ConflictingAppointmentID = result.ConflictingAppointmentID
	attempt.RecordedAt = uc.now().UTC()

	uc.Metrics.ObserveVerdict("submit", result.Accepted, result.ReasonCode)
	if err := uc.AttemptRepository.Record(ctx, attempt); err != nil {
		uc.Log.Warn("appointmentUsecase failed to journal booking attempt",
			zap.String(constvars.LoggingRequestIDKey, attempt.RequestID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) invalidateSlots(ctx context.Context, doctorID string, date time.Time) {
	if err := uc.SlotUsecase.InvalidateSlots(ctx, doctorID, date); err != nil {
		uc.Log.Warn("appointmentUsecase failed to invalidate cached slots",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment, previous models.AppointmentStatus) {
	event := &models.AppointmentEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		Source:         constvars.AppointmentEventSrc,
		OccurredAt:     uc.now().UTC(),
		AppointmentID:  appointment.ID,
		DoctorID:       appointment.DoctorID,
		PatientID:      appointment.PatientID,
		Date:           appointment.Date,
		ScheduledTime:  appointment.ScheduledTime,
		PreviousStatus: previous,
		Status:         appointment.Status,
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase failed to publish appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
