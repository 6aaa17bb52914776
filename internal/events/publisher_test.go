package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"deskview/pkg/kafka"
	"deskview/pkg/logger"
	"deskview/pkg/model"
)

type mockProducer struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	return m.publishFunc(ctx, msg)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
}

func TestPublisher_BookingCreated(t *testing.T) {
	var published kafka.Message
	p := NewPublisher(&mockProducer{
		publishFunc: func(_ context.Context, msg kafka.Message) error {
			published = msg
			return nil
		},
	}, testLogger())

	p.BookingCreated(&model.Booking{
		ID: 42, RoomID: 3, RoomType: model.RoomTypePrivate,
		SlotDate: "2026-09-01", SlotStart: "09:00", SlotEnd: "10:00",
	}, 7)

	if published.Key != "42" {
		t.Errorf("expected booking id as partition key, got %q", published.Key)
	}
	if published.GetEventType() != EventBookingCreated {
		t.Errorf("expected event type %q, got %q", EventBookingCreated, published.GetEventType())
	}
	if published.GetEventID() == "" {
		t.Error("expected generated event id")
	}

	var event BookingEvent
	if err := json.Unmarshal(published.Value, &event); err != nil {
		t.Fatalf("could not decode event payload: %v", err)
	}
	if event.BookingID != 42 || event.RoomID != 3 || event.UserID != 7 {
		t.Errorf("unexpected payload: %+v", event)
	}
	if event.SlotStart != "09:00" || event.SlotEnd != "10:00" {
		t.Errorf("unexpected slot in payload: %+v", event)
	}
}

func TestPublisher_BookingCancelled(t *testing.T) {
	var published kafka.Message
	p := NewPublisher(&mockProducer{
		publishFunc: func(_ context.Context, msg kafka.Message) error {
			published = msg
			return nil
		},
	}, testLogger())

	p.BookingCancelled(17, 7)

	if published.GetEventType() != EventBookingCancelled {
		t.Errorf("expected event type %q, got %q", EventBookingCancelled, published.GetEventType())
	}
	if published.Key != "17" {
		t.Errorf("expected booking id as partition key, got %q", published.Key)
	}
}

func TestPublisher_PublishFailureDoesNotPropagate(t *testing.T) {
	p := NewPublisher(&mockProducer{
		publishFunc: func(context.Context, kafka.Message) error {
			return errors.New("broker unreachable")
		},
	}, testLogger())

	// must not panic or propagate
	p.BookingCreated(&model.Booking{ID: 1}, 0)
}

func TestPublisher_NilSafe(t *testing.T) {
	var p *Publisher
	p.BookingCreated(&model.Booking{ID: 1}, 0)
	p.BookingCancelled(1, 0)

	p = NewPublisher(nil, testLogger())
	p.BookingCreated(&model.Booking{ID: 1}, 0)
}
