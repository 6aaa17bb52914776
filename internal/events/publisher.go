package events

import (
	"context"
	"strconv"
	"time"

	"deskview/pkg/kafka"
	"deskview/pkg/logger"
	"deskview/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"

	source = "deskview"

	publishTimeout = 5 * time.Second
)

// BookingEvent is the payload published for booking lifecycle changes.
type BookingEvent struct {
	BookingID int            `json:"booking_id"`
	RoomID    int            `json:"room_id,omitempty"`
	RoomType  model.RoomType `json:"room_type,omitempty"`
	SlotDate  string         `json:"slot_date,omitempty"`
	SlotStart string         `json:"slot_start,omitempty"`
	SlotEnd   string         `json:"slot_end,omitempty"`
	UserID    int            `json:"user_id,omitempty"`
	At        time.Time      `json:"at"`
}

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// Publisher emits booking activity to Kafka. Publishing is best
// effort: failures are logged and never propagate to the caller, and a
// nil Publisher is a safe no-op so the stream can be left unconfigured.
type Publisher struct {
	producer producer
	log      *logger.Logger
}

func NewPublisher(p producer, log *logger.Logger) *Publisher {
	return &Publisher{producer: p, log: log}
}

func (p *Publisher) BookingCreated(booking *model.Booking, userID int) {
	if p == nil || p.producer == nil {
		return
	}
	p.publish(EventBookingCreated, BookingEvent{
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		RoomType:  booking.RoomType,
		SlotDate:  booking.SlotDate,
		SlotStart: booking.SlotStart,
		SlotEnd:   booking.SlotEnd,
		UserID:    userID,
		At:        time.Now().UTC(),
	})
}

func (p *Publisher) BookingCancelled(bookingID, userID int) {
	if p == nil || p.producer == nil {
		return
	}
	p.publish(EventBookingCancelled, BookingEvent{
		BookingID: bookingID,
		UserID:    userID,
		At:        time.Now().UTC(),
	})
}

func (p *Publisher) publish(eventType string, event BookingEvent) {
	msg := kafka.NewMessage().
		WithKey(strconv.Itoa(event.BookingID)).
		WithValue(event).
		WithEventType(eventType).
		WithSource(source).
		Build()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}
