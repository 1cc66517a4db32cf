package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventTweetPosted, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.Actor)
		return errors.New("handler failure must not stop delivery")
	})
	d.Subscribe(EventTweetPosted, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.Actor)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		t.Error("handler for a different event type must not fire")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTweetPosted, Actor: "alice@example.com"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(got) != 2 || got[0] != "first:alice@example.com" || got[1] != "second:alice@example.com" {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventUserLoggedIn}); err != nil {
		t.Fatalf("publish without subscribers must succeed, got %v", err)
	}
}
