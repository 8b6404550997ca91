package events

import (
	"testing"
	"time"

	"gruas_rd/internal/domain/entities"
)

func TestBroker_PublishFansOut(t *testing.T) {
	b := NewBroker(4)
	defer b.Close()

	sub1 := b.Subscribe()
	sub2 := b.Subscribe()

	ev := entities.NegotiationEvent{ServiceID: "svc-1", Type: entities.NegotiationEventAmountProposed, Version: 1}
	b.Publish(ev)

	for _, sub := range []<-chan entities.NegotiationEvent{sub1, sub2} {
		select {
		case got := <-sub:
			if got.ServiceID != "svc-1" || got.Type != entities.NegotiationEventAmountProposed || got.Version != 1 {
				t.Fatalf("unexpected event: %+v", got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber did not receive the event")
		}
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker(1)
	defer b.Close()

	b.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(entities.NegotiationEvent{ServiceID: "svc-1", Version: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish must never block on a full subscriber")
	}
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker(4)
	sub := b.Subscribe()

	b.Close()

	if _, open := <-sub; open {
		t.Fatalf("expected subscriber channel to be closed")
	}

	// Idempotent, and publishing after close is a no-op.
	b.Close()
	b.Publish(entities.NegotiationEvent{ServiceID: "svc-1"})

	if ch := b.Subscribe(); ch == nil {
		t.Fatalf("expected a closed channel, got nil")
	} else if _, open := <-ch; open {
		t.Fatalf("expected subscription after close to be closed immediately")
	}
}
