package slot

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/shared/metrics"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SlotUsecase struct {
	schedules    contracts.ScheduleClient
	appointments contracts.AppointmentClient
	redisRepo    contracts.RedisRepository
	metrics      *metrics.BookingMetrics
	config       *config.InternalConfig
	logger       *zap.Logger
}

func NewSlotUsecase(
	schedules contracts.ScheduleClient,
	appointments contracts.AppointmentClient,
	redisRepo contracts.RedisRepository,
	bookingMetrics *metrics.BookingMetrics,
	config *config.InternalConfig,
	logger *zap.Logger,
) *SlotUsecase {
	return &SlotUsecase{
		schedules:    schedules,
		appointments: appointments,
		redisRepo:    redisRepo,
		metrics:      bookingMetrics,
		config:       config,
		logger:       logger,
	}
}

// ListAvailableSlots fetches the doctor's schedule, session length and the
// date's appointments, then returns the bookable slots. The computed list is
// cached under a key derived from all three inputs, so any change upstream
// yields a fresh computation.
func (s *SlotUsecase) ListAvailableSlots(ctx context.Context, doctorID string, date time.Time) (*responses.AvailableSlots, error) {
	requestID := utils.RequestIDFromContext(ctx)
	dateStr := date.Format(constvars.DateLayout)
	s.logger.Info("SlotUsecase.ListAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, dateStr),
	)

	rows, err := s.schedules.FindWeeklySchedule(ctx, doctorID)
	if err != nil {
		s.logger.Error("SlotUsecase.ListAvailableSlots error fetching weekly schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	capacity, err := s.schedules.FindTreatmentCapacity(ctx, doctorID)
	if err != nil {
		s.logger.Error("SlotUsecase.ListAvailableSlots error fetching treatment capacity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := s.fetchExisting(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	cacheKey := CacheKey(doctorID, date, rows, *capacity, existing)
	redisKey := slotListKey(doctorID, dateStr, cacheKey)

	slots, hit := s.cachedSlots(ctx, redisKey)
	if !hit {
		slots = GenerateSlots(date, rows, *capacity, existing)
		s.storeSlots(ctx, doctorID, dateStr, redisKey, slots)
	}
	s.metrics.ObserveSlotList(hit)

	result := &responses.AvailableSlots{
		DoctorID:               doctorID,
		Date:                   dateStr,
		SessionDurationMinutes: capacity.SessionDurationMinutes,
		MaxPatientsPerDay:      capacity.MaxPatientsPerDay,
		CapacityActive:         capacity.IsActive,
		Slots:                  slots,
		CacheKey:               cacheKey,
	}
	if hours, ok := ResolveWorkingHours(date, rows); ok {
		result.WorkingHours = hours.String()
	}

	s.logger.Info("SlotUsecase.ListAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingCacheHitKey, hit),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return result, nil
}

// ValidateBooking re-checks a requested slot against a freshly fetched
// appointment snapshot; cached slot lists are never consulted. A zero
// duration defaults to the doctor's session length.
func (s *SlotUsecase) ValidateBooking(ctx context.Context, doctorID string, request *requests.ValidateSlot) (*responses.SlotVerdict, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.logger.Info("SlotUsecase.ValidateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
		zap.Int(constvars.LoggingDurationKey, request.DurationMinutes),
	)

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}

	rows, err := s.schedules.FindWeeklySchedule(ctx, doctorID)
	if err != nil {
		s.logger.Error("SlotUsecase.ValidateBooking error fetching weekly schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	duration := request.DurationMinutes
	if duration == 0 {
		capacity, err := s.schedules.FindTreatmentCapacity(ctx, doctorID)
		if err != nil {
			s.logger.Error("SlotUsecase.ValidateBooking error fetching treatment capacity",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		duration = capacity.SessionDurationMinutes
	}

	existing, err := s.fetchExisting(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	verdict := ValidateBooking(BookingCandidate{Date: date, Time: request.Time, DurationMinutes: duration}, rows, existing)
	s.metrics.ObserveVerdict("validate", verdict.Accepted, string(verdict.ReasonCode))

	s.logger.Info("SlotUsecase.ValidateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, verdict.Accepted),
		zap.String(constvars.LoggingReasonCodeKey, string(verdict.ReasonCode)),
	)
	return &responses.SlotVerdict{
		DoctorID:                 doctorID,
		Date:                     date.Format(constvars.DateLayout),
		Time:                     request.Time,
		DurationMinutes:          duration,
		Accepted:                 verdict.Accepted,
		ReasonCode:               string(verdict.ReasonCode),
		ConflictingAppointmentID: verdict.ConflictingAppointmentID,
	}, nil
}

// InvalidateSlots drops every cached slot list of doctorID on date.
func (s *SlotUsecase) InvalidateSlots(ctx context.Context, doctorID string, date time.Time) error {
	requestID := utils.RequestIDFromContext(ctx)
	indexKey := slotIndexKey(doctorID, date.Format(constvars.DateLayout))
	s.logger.Info("SlotUsecase.InvalidateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, indexKey),
	)

	members, err := s.redisRepo.GetSetMembers(ctx, indexKey)
	if err != nil {
		s.logger.Error("SlotUsecase.InvalidateSlots error reading cache index",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if err := s.redisRepo.Delete(ctx, append(members, indexKey)...); err != nil {
		s.logger.Error("SlotUsecase.InvalidateSlots error deleting cached slot lists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *SlotUsecase) fetchExisting(ctx context.Context, doctorID string, date time.Time) ([]ExistingAppointment, error) {
	appointments, err := s.appointments.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		s.logger.Error("SlotUsecase error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return ExistingFromAppointments(OnDoctorAndDate(appointments, doctorID, date)), nil
}

// OnDoctorAndDate keeps only records for doctorID on date, in case the source
// carries rows for other doctors or days. Rows without a doctor or date are kept.
func OnDoctorAndDate(appointments []models.Appointment, doctorID string, date time.Time) []models.Appointment {
	dateStr := date.Format(constvars.DateLayout)
	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.DoctorID != "" && a.DoctorID != doctorID {
			continue
		}
		if a.Date != "" && a.Date != dateStr {
			continue
		}
		out = append(out, a)
	}
	return out
}

// cachedSlots reads a cached list. Cache failures are logged and treated as a
// miss.
func (s *SlotUsecase) cachedSlots(ctx context.Context, redisKey string) ([]string, bool) {
	raw, err := s.redisRepo.Get(ctx, redisKey)
	if err != nil {
		s.logger.Warn("SlotUsecase cache read failed",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}
	slots := []string{}
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		s.logger.Warn("SlotUsecase cached value is not a slot list",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil, false
	}
	return slots, true
}

func (s *SlotUsecase) storeSlots(ctx context.Context, doctorID, date, redisKey string, slots []string) {
	ttl := time.Duration(s.config.Slot.CacheTTLInSeconds) * time.Second
	if ttl <= 0 {
		return
	}
	if err := s.redisRepo.Set(ctx, redisKey, slots, ttl); err != nil {
		s.logger.Warn("SlotUsecase cache write failed",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return
	}

	indexKey := slotIndexKey(doctorID, date)
	if err := s.redisRepo.AddToSet(ctx, indexKey, redisKey); err != nil {
		s.logger.Warn("SlotUsecase cache index write failed",
			zap.String(constvars.LoggingRedisKey, indexKey),
			zap.Error(err),
		)
		return
	}
	if err := s.redisRepo.Expire(ctx, indexKey, ttl); err != nil {
		s.logger.Warn("SlotUsecase cache index expire failed",
			zap.String(constvars.LoggingRedisKey, indexKey),
			zap.Error(err),
		)
	}
}

func slotListKey(doctorID, date, cacheKey string) string {
	return fmt.Sprintf("%s:%s:%s:%s", constvars.RedisKeySlotList, doctorID, date, cacheKey)
}

func slotIndexKey(doctorID, date string) string {
	return fmt.Sprintf("%s:%s:%s", constvars.RedisKeySlotIndex, doctorID, date)
}
