package slot

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/models"
	redisRepo "clinic-booking-service/internal/app/services/shared/redis"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type fakeScheduleClient struct {
	mu           sync.Mutex
	rows         []models.WeeklyScheduleRow
	capacity     models.TreatmentCapacity
	doctors      []models.DoctorRef
	err          error
	capacityHits int
}

func (f *fakeScheduleClient) FindWeeklySchedule(context.Context, string) ([]models.WeeklyScheduleRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeScheduleClient) FindTreatmentCapacity(context.Context, string) (*models.TreatmentCapacity, error) {
	f.mu.Lock()
	f.capacityHits++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := f.capacity
	return &c, nil
}

func (f *fakeScheduleClient) FindScheduledDoctors(context.Context) ([]models.DoctorRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doctors, nil
}

type fakeAppointmentClient struct {
	appointments []models.Appointment
	err          error
}

func (f *fakeAppointmentClient) FindByDoctorAndDate(context.Context, string, time.Time) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func (f *fakeAppointmentClient) FindByID(context.Context, string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) Create(context.Context, *models.BookingRequest) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) UpdateStatus(context.Context, string, *models.AppointmentStatusUpdate) (*models.Appointment, error) {
	return nil, nil
}

func newTestUsecase(t *testing.T, schedules *fakeScheduleClient, appointments *fakeAppointmentClient) (*SlotUsecase, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.InternalConfig{Slot: config.AppSlot{CacheTTLInSeconds: 60, WarmUpDays: 3}}
	return NewSlotUsecase(schedules, appointments, redisRepo.NewRedisRepository(client), nil, cfg, zap.NewNop()), mr
}
