package webhookqueue

import (
	"context"
	"fmt"
	"sync"

	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "payment_webhook_events_queue"
	DeadLetterQueueName = "payment_webhook_events_dlq"
)

// WebhookQueueMessage is the payload stored in RabbitMQ. Body holds the
// provider event exactly as received; the signature is verified before
// enqueue, so consumers trust the payload.
type WebhookQueueMessage struct {
	ID          string                    `json:"id"`
	Provider    constvars.PaymentProvider `json:"provider"`
	Body        json.RawMessage           `json:"body"`
	FailedCount int                       `json:"failed_count"`
}

// Service manages the RabbitMQ queues backing asynchronous webhook processing.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	prefetch int
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, enables publisher confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		prefetch: prefetch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// QueuedItem is a fetched delivery with its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     WebhookQueueMessage
}

// Enqueue publishes a message to the standard queue with persistence and waits
// for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, message *WebhookQueueMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("WebhookQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, string(message.Provider)),
	)
	return s.publish(ctx, StandardQueueName, message)
}

// Reenqueue publishes the message (with its bumped failed count) back to the
// tail of the standard queue.
func (s *Service) Reenqueue(ctx context.Context, message *WebhookQueueMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("WebhookQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, string(message.Provider)),
		zap.Int("failed_count", message.FailedCount),
	)
	return s.publish(ctx, StandardQueueName, message)
}

// EnqueueToDeadQueue moves an exhausted message to the DLQ.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message *WebhookQueueMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Warn("WebhookQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, string(message.Provider)),
		zap.Int("failed_count", message.FailedCount),
	)
	return s.publish(ctx, DeadLetterQueueName, message)
}

// FetchN retrieves up to n messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, n int) ([]QueuedItem, error) {
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload WebhookQueueMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Invalid JSON goes straight to the DLQ to avoid a poison loop.
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	return items, nil
}

// AckMessage acknowledges a message by delivery tag.
func (s *Service) AckMessage(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) publish(ctx context.Context, queue string, message *WebhookQueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
