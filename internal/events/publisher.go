package events

import (
	"context"
	"strconv"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/pkg/config"
	"github.com/JensIssa/HotelBooking-Clean/pkg/kafka"
	"github.com/JensIssa/HotelBooking-Clean/pkg/logger"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

const source = "hotelbooking-api"

const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingRemoved = "booking.removed"
)

// Publisher emits booking lifecycle events. Publishing is best-effort:
// a broker outage must never fail the booking operation itself, so
// implementations log failures instead of returning them.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingUpdated(ctx context.Context, booking *model.Booking)
	BookingRemoved(ctx context.Context, id int)
	Close() error
}

type bookingEvent struct {
	BookingID  int        `json:"booking_id"`
	RoomID     int        `json:"room_id,omitempty"`
	CustomerID int        `json:"customer_id,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	IsActive   bool       `json:"is_active,omitempty"`
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(cfg *config.Config) (Publisher, error) {
	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaTopic,
		BatchTimeout: cfg.KafkaBatchTimeout,
		MaxAttempts:  cfg.KafkaMaxAttempts,
	})
	if err != nil {
		return nil, err
	}

	cfg.Log.Info("Booking event publisher initialized", "topic", cfg.KafkaTopic)
	return &kafkaPublisher{producer: producer, log: cfg.Log}, nil
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, TypeBookingCreated, booking.ID, bookingEvent{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		CustomerID: booking.CustomerID,
		StartDate:  &booking.StartDate,
		EndDate:    &booking.EndDate,
		IsActive:   booking.IsActive,
	})
}

func (p *kafkaPublisher) BookingUpdated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, TypeBookingUpdated, booking.ID, bookingEvent{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		CustomerID: booking.CustomerID,
		StartDate:  &booking.StartDate,
		EndDate:    &booking.EndDate,
		IsActive:   booking.IsActive,
	})
}

func (p *kafkaPublisher) BookingRemoved(ctx context.Context, id int) {
	p.publish(ctx, TypeBookingRemoved, id, bookingEvent{BookingID: id})
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, bookingID int, payload bookingEvent) {
	msg, err := kafka.NewMessage(eventType, source, strconv.Itoa(bookingID), payload)
	if err != nil {
		p.log.Error("Failed to build booking event", "event_type", eventType, "booking_id", bookingID, "error", err)
		return
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event", "event_type", eventType, "booking_id", bookingID, "error", err)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when Kafka is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Booking) {}
func (noopPublisher) BookingUpdated(context.Context, *model.Booking) {}
func (noopPublisher) BookingRemoved(context.Context, int)            {}
func (noopPublisher) Close() error                                   { return nil }
