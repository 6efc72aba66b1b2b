package events

import (
	"clinic-booking-service/internal/app/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChannel numbers deliveries from 1 like a confirm-mode channel. With
// deferConfirms set, confirms are left to the test to deliver.
type fakeChannel struct {
	published     []amqp.Publishing
	keys          []string
	confirms      chan amqp.Confirmation
	ack           bool
	deferConfirms bool
	err           error
}

func (f *fakeChannel) GetNextPublishSeqNo() uint64 {
	return uint64(len(f.published)) + 1
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	if !f.deferConfirms {
		f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	}
	return nil
}

type countingMetrics struct {
	observed []string
}

func (c *countingMetrics) ObserveEventPublish(eventType, status string) {
	c.observed = append(c.observed, eventType+":"+status)
}

func newTestPublisher(ch *fakeChannel) (*publisher, *countingMetrics) {
	m := &countingMetrics{}
	return &publisher{ch: ch, queue: "appointment_events", confirms: ch.confirms, log: zap.NewNop(), metrics: m}, m
}

func TestPublisherPublish(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: true}
	p, m := newTestPublisher(ch)

	event := &models.AppointmentEvent{
		Type:          "appointment.booked",
		AppointmentID: "appt-1",
		DoctorID:      "doc-1",
		Status:        models.AppointmentStatusPending,
	}
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "appointment_events", ch.keys[0])
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "appointment.booked", msg.Type)
	assert.NotEmpty(t, msg.MessageId)

	var decoded models.AppointmentEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "appt-1", decoded.AppointmentID)
	assert.Equal(t, "clinic-booking-service", decoded.Source)
	assert.False(t, decoded.OccurredAt.IsZero())
	assert.Equal(t, []string{"appointment.booked:ok"}, m.observed)
}

func TestPublisherNack(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: false}
	p, m := newTestPublisher(ch)

	err := p.Publish(context.Background(), &models.AppointmentEvent{Type: "appointment.booked"})
	assert.Error(t, err)
	assert.Equal(t, []string{"appointment.booked:error"}, m.observed)
}

func TestPublisherChannelError(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), err: errors.New("channel closed")}
	p, _ := newTestPublisher(ch)

	err := p.Publish(context.Background(), &models.AppointmentEvent{Type: "appointment.status_changed"})
	assert.Error(t, err)
}

func TestPublisherContextDone(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: true}
	p, _ := newTestPublisher(ch)
	// confirmations are never read from this channel, so the publisher waits on ctx
	p.confirms = make(chan amqp.Confirmation)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, &models.AppointmentEvent{Type: "appointment.booked"})
	assert.Error(t, err)
}

func TestPublisherSkipsConfirmOfAbandonedMessage(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 4), deferConfirms: true}
	p, m := newTestPublisher(ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, p.Publish(ctx, &models.AppointmentEvent{Type: "appointment.booked"}))

	// the broker acks the first message only after its publisher gave up
	ch.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
	ch.deferConfirms, ch.ack = false, false

	err := p.Publish(context.Background(), &models.AppointmentEvent{Type: "appointment.status_changed"})
	assert.Error(t, err)
	assert.Empty(t, ch.confirms)
	assert.Equal(t, []string{"appointment.booked:error", "appointment.status_changed:error"}, m.observed)
}

func TestPublisherAcksInOrderAfterAbandonedMessage(t *testing.T) {
	ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 4), deferConfirms: true}
	p, _ := newTestPublisher(ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, p.Publish(ctx, &models.AppointmentEvent{Type: "appointment.booked"}))

	ch.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: false}
	ch.deferConfirms, ch.ack = false, true

	assert.NoError(t, p.Publish(context.Background(), &models.AppointmentEvent{Type: "appointment.booked"}))
}
