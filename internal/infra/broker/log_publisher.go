package broker

import (
	"context"
	"log/slog"

	"salesapi/internal/domain/service"
)

// logPublisher is the broker-less publisher used when no AMQP URL is
// configured; it writes events to the application log instead.
type logPublisher struct {
	logger *slog.Logger
}

func newLogPublisher(logger *slog.Logger) service.EventPublisher {
	return &logPublisher{logger: logger}
}

// PublishOrderEvent logs the event at info level.
func (p *logPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	p.logger.InfoContext(ctx, "Order event",
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
		slog.String("prior_status", event.PriorStatus),
		slog.Float64("total", event.Total),
	)

	return nil
}

// Close is a no-op for the log publisher.
func (p *logPublisher) Close() error {
	return nil
}
