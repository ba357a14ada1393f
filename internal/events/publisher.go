package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"medspa/internal/model"
	"medspa/pkg/config"
	"medspa/pkg/logger"
)

const (
	TypeAppointmentCreated       = "appointment.created"
	TypeAppointmentStatusChanged = "appointment.status_changed"
)

// Event is the wire form of an appointment lifecycle change published for
// downstream consumers (reporting, reminders). This is an integration
// stream, not end-user notification delivery.
type Event struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	OccurredAt  string            `json:"occurred_at"`
	Appointment model.Appointment `json:"appointment"`
}

type Publisher interface {
	AppointmentCreated(ctx context.Context, apt model.Appointment) error
	AppointmentStatusChanged(ctx context.Context, apt model.Appointment) error
	Close() error
}

// NewPublisher returns a Kafka-backed publisher when brokers are
// configured, a no-op otherwise.
func NewPublisher(cfg *config.Config) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nopPublisher{}
	}
	return newKafkaPublisher(cfg)
}

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func newKafkaPublisher(cfg *config.Config) *kafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{}, // key by appointment ID for ordering
		RequiredAcks: kafka.RequireAll,
		Compression:  compress.Snappy,
		BatchTimeout: 50 * time.Millisecond,
	}
	cfg.Log.Info("Kafka event publisher enabled", "topic", cfg.KafkaTopic)
	return &kafkaPublisher{writer: writer, log: cfg.Log}
}

func (p *kafkaPublisher) AppointmentCreated(ctx context.Context, apt model.Appointment) error {
	return p.publish(ctx, TypeAppointmentCreated, apt)
}

func (p *kafkaPublisher) AppointmentStatusChanged(ctx context.Context, apt model.Appointment) error {
	return p.publish(ctx, TypeAppointmentStatusChanged, apt)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, apt model.Appointment) error {
	event := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  time.Now().Format(time.RFC3339),
		Appointment: apt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(apt.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

func (nopPublisher) AppointmentCreated(context.Context, model.Appointment) error { return nil }

func (nopPublisher) AppointmentStatusChanged(context.Context, model.Appointment) error { return nil }

func (nopPublisher) Close() error { return nil }
