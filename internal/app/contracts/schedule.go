package contracts

import (
	"clinic-booking-service/internal/app/models"
	"context"
)

type ScheduleClient interface {
	FindWeeklySchedule(ctx context.Context, doctorID string) ([]models.WeeklyScheduleRow, error)
	FindTreatmentCapacity(ctx context.Context, doctorID string) (*models.TreatmentCapacity, error)
	FindScheduledDoctors(ctx context.Context) ([]models.DoctorRef, error)
}
