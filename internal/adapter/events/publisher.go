package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/trace"

	"github.com/srgjo27/shareit/internal/core/domain"
)

type KafkaPublisher struct {
	producer *Producer
	service  string
	logger   *slog.Logger
}

func NewKafkaPublisher(producer *Producer, service string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, service: service, logger: logger}
}

func (p *KafkaPublisher) BookingCreated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, EventBookingCreated, b)
}

func (p *KafkaPublisher) BookingStatusChanged(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, EventBookingStatusChanged, b)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, b *domain.Booking) {
	ev, err := NewEnvelope(eventType, p.service, traceID(ctx), b)
	if err != nil {
		p.logger.ErrorContext(ctx, "build event", slog.String("event_type", eventType), slog.String("error", err.Error()))
		return
	}

	value, err := json.Marshal(ev)
	if err != nil {
		p.logger.ErrorContext(ctx, "encode event", slog.String("event_type", eventType), slog.String("error", err.Error()))
		return
	}

	if !p.producer.Publish(PartitionKey(b.ID), value, kafka.Header{Key: "event_type", Value: []byte(eventType)}) {
		p.logger.WarnContext(ctx, "event dropped",
			slog.String("event_type", eventType),
			slog.Int64("booking_id", b.ID),
		)
	}
}

// LogPublisher writes events to the log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) BookingCreated(ctx context.Context, b *domain.Booking) {
	p.log(ctx, EventBookingCreated, b)
}

func (p *LogPublisher) BookingStatusChanged(ctx context.Context, b *domain.Booking) {
	p.log(ctx, EventBookingStatusChanged, b)
}

func (p *LogPublisher) log(ctx context.Context, eventType string, b *domain.Booking) {
	p.logger.InfoContext(ctx, "booking event",
		slog.String("event_type", eventType),
		slog.Int64("booking_id", b.ID),
		slog.Int64("item_id", b.ItemID),
		slog.String("status", string(b.Status)),
	)
}

func traceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
