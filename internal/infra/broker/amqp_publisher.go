// Package broker implements the order event feed on top of RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"

	"salesapi/config"
	"salesapi/internal/domain/service"
)

const defaultQueue = "order-events"

// amqpPublisher publishes order events to a RabbitMQ queue. A channel is
// opened per publish; the connection is shared for the process lifetime.
type amqpPublisher struct {
	conn   *amqp.Connection
	queue  string
	logger *slog.Logger
}

// Params defines the dependencies for the event publisher.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewPublisher builds the order event publisher. Without an AMQP URL
// configured it falls back to a publisher that only logs events, so the order
// flow works unchanged in development.
func NewPublisher(params Params) (service.EventPublisher, error) {
	if params.Config.AMQP == nil || params.Config.AMQP.URL == "" {
		params.Logger.Info("AMQP not configured, order events will be logged only")

		return newLogPublisher(params.Logger), nil
	}

	conn, err := amqp.Dial(params.Config.AMQP.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}

	queue := params.Config.AMQP.Queue
	if queue == "" {
		queue = defaultQueue
	}

	// Declare the queue up front so publishes never race queue creation.
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open amqp channel")
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "failed to declare order event queue")
	}

	publisher := &amqpPublisher{
		conn:   conn,
		queue:  queue,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// PublishOrderEvent serializes the event and publishes it to the queue.
func (p *amqpPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open amqp channel")
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)

	return errors.Wrap(err, "failed to publish order event")
}

// Close shuts down the broker connection.
func (p *amqpPublisher) Close() error {
	return errors.WithStack(p.conn.Close())
}
