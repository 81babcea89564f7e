package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/in"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

// BookingListener слушает поток событий внешней системы бронирования
// и превращает их в брони в хранилище, чтобы следующие запросы
// доступности их уже учитывали
type BookingListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewBookingListener(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) (*BookingListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &BookingListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *BookingListener) Start(ctx context.Context) error {
	if err := l.startBookingQueue(ctx); err != nil {
		return err
	}

	l.logger.Info("booking.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.Queue,
	})
	return nil
}

func (l *BookingListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
