package slot

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotUsecaseListAvailableSlots(t *testing.T) {
	schedules := &fakeScheduleClient{rows: mondayMorning(), capacity: halfHourSessions}
	appointments := &fakeAppointmentClient{appointments: []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", Date: "2025-01-06", ScheduledTime: "10:00:00", DurationMinutes: 30, Status: models.AppointmentStatusConfirmed},
		{ID: "other-doctor", DoctorID: "doc-2", Date: "2025-01-06", ScheduledTime: "09:00:00", DurationMinutes: 30, Status: models.AppointmentStatusConfirmed},
	}}
	uc, mr := newTestUsecase(t, schedules, appointments)
	ctx := context.Background()

	got, err := uc.ListAvailableSlots(ctx, "doc-1", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, got.Slots)
	assert.Equal(t, "09:00-12:00", got.WorkingHours)
	assert.Equal(t, 30, got.SessionDurationMinutes)
	assert.Equal(t, "2025-01-06", got.Date)
	assert.NotEmpty(t, got.CacheKey)

	listKey := slotListKey("doc-1", "2025-01-06", got.CacheKey)
	assert.True(t, mr.Exists(listKey))
	members, err := mr.SMembers(slotIndexKey("doc-1", "2025-01-06"))
	require.NoError(t, err)
	assert.Equal(t, []string{listKey}, members)

	t.Run("served from cache while inputs are unchanged", func(t *testing.T) {
		require.NoError(t, mr.Set(listKey, `["cached"]`))
		again, err := uc.ListAvailableSlots(ctx, "doc-1", monday)
		require.NoError(t, err)
		assert.Equal(t, []string{"cached"}, again.Slots)
	})

	t.Run("new appointment changes the key", func(t *testing.T) {
		appointments.appointments = append(appointments.appointments, models.Appointment{
			ID: "a2", DoctorID: "doc-1", Date: "2025-01-06", ScheduledTime: "11:30:00", DurationMinutes: 30, Status: models.AppointmentStatusPending,
		})
		fresh, err := uc.ListAvailableSlots(ctx, "doc-1", monday)
		require.NoError(t, err)
		assert.NotEqual(t, got.CacheKey, fresh.CacheKey)
		assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00"}, fresh.Slots)
	})

	t.Run("no schedule yields empty list", func(t *testing.T) {
		empty, err := uc.ListAvailableSlots(ctx, "doc-1", tuesday)
		require.NoError(t, err)
		assert.NotNil(t, empty.Slots)
		assert.Empty(t, empty.Slots)
		assert.Empty(t, empty.WorkingHours)
	})
}

func TestSlotUsecaseListAvailableSlotsCacheDown(t *testing.T) {
	uc, mr := newTestUsecase(t, &fakeScheduleClient{rows: mondayMorning(), capacity: halfHourSessions}, &fakeAppointmentClient{})
	mr.Close()

	got, err := uc.ListAvailableSlots(context.Background(), "doc-1", monday)
	require.NoError(t, err)
	assert.Len(t, got.Slots, 6)
}

func TestSlotUsecaseListAvailableSlotsUpstreamError(t *testing.T) {
	uc, _ := newTestUsecase(t, &fakeScheduleClient{rows: mondayMorning(), capacity: halfHourSessions}, &fakeAppointmentClient{err: exceptions.ErrSendHTTPRequest(errors.New("refused"))})

	_, err := uc.ListAvailableSlots(context.Background(), "doc-1", monday)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
}

func TestSlotUsecaseValidateBooking(t *testing.T) {
	schedules := &fakeScheduleClient{rows: mondayMorning(), capacity: halfHourSessions}
	appointments := &fakeAppointmentClient{appointments: []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", Date: "2025-01-06", ScheduledTime: "10:00:00", DurationMinutes: 30, Status: models.AppointmentStatusConfirmed},
	}}
	uc, _ := newTestUsecase(t, schedules, appointments)
	ctx := context.Background()

	t.Run("defaults duration to session length", func(t *testing.T) {
		verdict, err := uc.ValidateBooking(ctx, "doc-1", &requests.ValidateSlot{Date: "2025-01-06", Time: "09:30"})
		require.NoError(t, err)
		assert.True(t, verdict.Accepted)
		assert.Equal(t, 30, verdict.DurationMinutes)
		assert.Equal(t, 1, schedules.capacityHits)
	})

	t.Run("explicit duration skips capacity lookup", func(t *testing.T) {
		verdict, err := uc.ValidateBooking(ctx, "doc-1", &requests.ValidateSlot{Date: "2025-01-06", Time: "09:45", DurationMinutes: 30})
		require.NoError(t, err)
		assert.False(t, verdict.Accepted)
		assert.Equal(t, "TIME_CONFLICT", verdict.ReasonCode)
		assert.Equal(t, "a1", verdict.ConflictingAppointmentID)
		assert.Equal(t, 1, schedules.capacityHits)
	})

	t.Run("outside working hours", func(t *testing.T) {
		verdict, err := uc.ValidateBooking(ctx, "doc-1", &requests.ValidateSlot{Date: "2025-01-06", Time: "08:30", DurationMinutes: 30})
		require.NoError(t, err)
		assert.Equal(t, "OUTSIDE_WORKING_HOURS", verdict.ReasonCode)
	})

	t.Run("no schedule for weekday", func(t *testing.T) {
		verdict, err := uc.ValidateBooking(ctx, "doc-1", &requests.ValidateSlot{Date: "2025-01-07", Time: "09:00", DurationMinutes: 30})
		require.NoError(t, err)
		assert.Equal(t, "NO_SCHEDULE_FOR_DAY", verdict.ReasonCode)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := uc.ValidateBooking(ctx, "doc-1", &requests.ValidateSlot{Date: "06/01/2025", Time: "09:00"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestSlotUsecaseInvalidateSlots(t *testing.T) {
	uc, mr := newTestUsecase(t, &fakeScheduleClient{rows: mondayMorning(), capacity: halfHourSessions}, &fakeAppointmentClient{})
	ctx := context.Background()

	got, err := uc.ListAvailableSlots(ctx, "doc-1", monday)
	require.NoError(t, err)
	listKey := slotListKey("doc-1", "2025-01-06", got.CacheKey)
	require.True(t, mr.Exists(listKey))

	require.NoError(t, uc.InvalidateSlots(ctx, "doc-1", monday))
	assert.False(t, mr.Exists(listKey))
	assert.False(t, mr.Exists(slotIndexKey("doc-1", "2025-01-06")))

	assert.NoError(t, uc.InvalidateSlots(ctx, "doc-1", tuesday))
}
