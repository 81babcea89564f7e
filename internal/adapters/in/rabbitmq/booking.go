package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/json_types"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

type BookingEventType string

const (
	BookingEventTypeCreated   BookingEventType = "booking.created"
	BookingEventTypeCancelled BookingEventType = "booking.cancelled"
)

type BookingEventMessage struct {
	Type      BookingEventType    `json:"type"`
	BookingID uuid.UUID           `json:"bookingId"`
	UserID    int64               `json:"userId"`
	StartDate json_types.DateTime `json:"start"`
	EndDate   json_types.DateTime `json:"end"`
}

func (l *BookingListener) startBookingQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.Bind,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consumeBookingMessages(ctx, msgs)

	return nil
}

func (l *BookingListener) consumeBookingMessages(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			// Закрытый канал означает потерю соединения с брокером
			if !ok {
				l.logger.Warn("booking.queue.closed", out.LogFields{
					"queue": l.cfg.RabbitMQ.Queue,
				})
				return
			}

			if err := l.processBookingMessage(ctx, msg); err != nil {
				msg.Nack(false, true) // requeue message
				continue
			}
			msg.Ack(false)
		}
	}
}

func (l *BookingListener) processBookingMessage(ctx context.Context, msg amqp.Delivery) error {
	var message BookingEventMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		// Нечитаемое сообщение подтверждаем, чтобы не зациклить очередь
		l.logger.Warn("booking.message.malformed", out.LogFields{
			"error":     err.Error(),
			"msgString": string(msg.Body),
		})
		return nil
	}

	l.logger.Info("booking.message.received", out.LogFields{
		"type":      message.Type,
		"bookingId": message.BookingID,
		"userId":    message.UserID,
	})

	switch message.Type {
	case BookingEventTypeCreated:
		return l.useCase.RegisterBusyEvent(ctx, domain.BusyEvent{
			UserID:        message.UserID,
			BookingID:     message.BookingID,
			StartDateTime: message.StartDate.Date,
			EndDateTime:   message.EndDate.Date,
		})
	case BookingEventTypeCancelled:
		return l.useCase.CancelBusyEvent(ctx, message.BookingID)
	default:
		l.logger.Warn("booking.message.unknown_type", out.LogFields{
			"type": message.Type,
		})
		return nil
	}
}
