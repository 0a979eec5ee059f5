package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
)

func TestSubscribe_RejectsNilHandler(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	if err := svc.Subscribe(interfaces.EventComponentCreated, nil); err == nil {
		t.Error("Expected an error for a nil handler")
	}
}

func TestPublish_DeliversToSubscribers(t *testing.T) {
	svc := NewService(arbor.NewLogger())

	received := make(chan interfaces.Event, 1)
	err := svc.Subscribe(interfaces.EventComponentCreated, func(ctx context.Context, event interfaces.Event) error {
		received <- event
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if err := svc.Publish(context.Background(), interfaces.Event{
		Type:    interfaces.EventComponentCreated,
		Payload: "cmp_1",
	}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.Payload != "cmp_1" {
			t.Errorf("Expected payload cmp_1, got %v", event.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Handler never received the event")
	}
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	svc := NewService(arbor.NewLogger())
	if err := svc.Publish(context.Background(), interfaces.Event{Type: interfaces.EventScreenDeleted}); err != nil {
		t.Errorf("Expected nil for an unsubscribed event type, got %v", err)
	}
}

func TestPublish_HandlerErrorNotPropagated(t *testing.T) {
	svc := NewService(arbor.NewLogger())

	done := make(chan struct{}, 1)
	_ = svc.Subscribe(interfaces.EventAnalysisFailed, func(ctx context.Context, event interfaces.Event) error {
		done <- struct{}{}
		return errors.New("handler exploded")
	})

	if err := svc.Publish(context.Background(), interfaces.Event{Type: interfaces.EventAnalysisFailed}); err != nil {
		t.Errorf("Handler errors must not reach the publisher, got %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Handler never ran")
	}
}

func TestPublish_FansOutToAllSubscribers(t *testing.T) {
	svc := NewService(arbor.NewLogger())

	received := make(chan int, 2)
	for i := 0; i < 2; i++ {
		i := i
		_ = svc.Subscribe(interfaces.EventScreenCreated, func(ctx context.Context, event interfaces.Event) error {
			received <- i
			return nil
		})
	}

	_ = svc.Publish(context.Background(), interfaces.Event{Type: interfaces.EventScreenCreated})

	seen := make(map[int]bool)
	for len(seen) < 2 {
		select {
		case i := <-received:
			seen[i] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("Only %d of 2 subscribers received the event", len(seen))
		}
	}
}
