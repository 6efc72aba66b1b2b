package events

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type channel interface {
	GetNextPublishSeqNo() uint64
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// publisher writes appointment events to a durable queue and waits for the
// broker confirm of each message. Confirms left over from an abandoned wait
// carry an older delivery tag and are skipped.
type publisher struct {
	ch       channel
	queue    string
	confirms <-chan amqp.Confirmation
	log      *zap.Logger
	metrics  eventMetrics
	mu       sync.Mutex
}

const confirmBuffer = 16

type eventMetrics interface {
	ObserveEventPublish(eventType, status string)
}

// NewPublisher declares the durable queue, enables confirms and returns the
// publisher bound to it.
func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger, metrics eventMetrics) (contracts.AppointmentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &publisher{
		ch:       ch,
		queue:    queue,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer)),
		log:      log,
		metrics:  metrics,
	}, nil
}

func (p *publisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	p.log.Info("EventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Source == "" {
		event.Source = constvars.AppointmentEventSrc
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := p.publish(ctx, event.ID, event.Type, body); err != nil {
		p.metrics.ObserveEventPublish(event.Type, "error")
		p.log.Error("EventPublisher.Publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	p.metrics.ObserveEventPublish(event.Type, "ok")
	p.log.Info("EventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

func (p *publisher) publish(ctx context.Context, messageID, eventType string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Type:         eventType,
		Timestamp:    time.Now().UTC(),
	}

	tag := p.ch.GetNextPublishSeqNo()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	for {
		select {
		case confirmed, ok := <-p.confirms:
			if !ok {
				return exceptions.ErrRabbitMQPublishMessage(errors.New("channel closed before confirm"), p.queue)
			}
			if confirmed.DeliveryTag < tag {
				p.log.Debug("EventPublisher dropped stale confirm",
					zap.Uint64(constvars.LoggingDeliveryTagKey, confirmed.DeliveryTag),
				)
				continue
			}
			if !confirmed.Ack {
				return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), p.queue)
			}
			return nil
		case <-ctx.Done():
			return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queue)
		}
	}
}
