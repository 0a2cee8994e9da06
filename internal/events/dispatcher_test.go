package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := Event{ID: "e1", Type: EventEmployeeCreated, Subject: "emp-1"}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("handler not invoked correctly: %+v", got)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	invoked := false
	d.Subscribe(EventEmployeeDeleted, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventEmployeeDeleted, func(context.Context, Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmployeeDeleted}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !invoked {
		t.Fatal("second handler not invoked after first failed")
	}
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
}
