package schedules

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"context"
	"net/url"
)

const (
	resourceSchedule = "schedules"
	resourceCapacity = "treatment-capacity"
	resourceDoctors  = "doctors"
)

type scheduleClient struct {
	client *transport.Client
}

func NewScheduleClient(client *transport.Client) contracts.ScheduleClient {
	return &scheduleClient{client: client}
}

func (c *scheduleClient) FindWeeklySchedule(ctx context.Context, doctorID string) ([]models.WeeklyScheduleRow, error) {
	rows := []models.WeeklyScheduleRow{}
	path := "/doctors/" + url.PathEscape(doctorID) + "/schedules"
	if err := c.client.Do(ctx, constvars.MethodGet, path, nil, nil, &rows, resourceSchedule); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *scheduleClient) FindTreatmentCapacity(ctx context.Context, doctorID string) (*models.TreatmentCapacity, error) {
	capacity := new(models.TreatmentCapacity)
	path := "/doctors/" + url.PathEscape(doctorID) + "/treatment-capacity"
	if err := c.client.Do(ctx, constvars.MethodGet, path, nil, nil, capacity, resourceCapacity); err != nil {
		return nil, err
	}
	return capacity, nil
}

func (c *scheduleClient) FindScheduledDoctors(ctx context.Context) ([]models.DoctorRef, error) {
	doctors := []models.DoctorRef{}
	query := url.Values{"hasSchedule": {"true"}}
	if err := c.client.Do(ctx, constvars.MethodGet, "/doctors", query, nil, &doctors, resourceDoctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
