package appointments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"context"
	"net/url"
	"time"
)

const resourceAppointment = "appointments"

type appointmentClient struct {
	client *transport.Client
}

func NewAppointmentClient(client *transport.Client) contracts.AppointmentClient {
	return &appointmentClient{client: client}
}

func (c *appointmentClient) FindByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	query := url.Values{
		"doctorId": {doctorID},
		"date":     {date.Format(constvars.DateLayout)},
	}
	if err := c.client.Do(ctx, constvars.MethodGet, "/appointments", query, nil, &appointments, resourceAppointment); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentClient) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	path := "/appointments/" + url.PathEscape(appointmentID)
	if err := c.client.Do(ctx, constvars.MethodGet, path, nil, nil, appointment, resourceAppointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Create submits a booking. The request's idempotency key travels as a header
// so a retried submission does not create a second appointment. A 409 from the
// clinic API surfaces as an error wrapping exceptions.ErrStoreConflict.
func (c *appointmentClient) Create(ctx context.Context, request *models.BookingRequest) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	idempotencyKey := transport.WithHeader(constvars.HeaderIdempotencyKey, request.IdempotencyKey)
	if err := c.client.Do(ctx, constvars.MethodPost, "/appointments", nil, request, appointment, resourceAppointment, idempotencyKey); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentClient) UpdateStatus(ctx context.Context, appointmentID string, update *models.AppointmentStatusUpdate) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	path := "/appointments/" + url.PathEscape(appointmentID) + "/status"
	if err := c.client.Do(ctx, constvars.MethodPatch, path, nil, update, appointment, resourceAppointment); err != nil {
		return nil, err
	}
	return appointment, nil
}
