// Package events carries negotiation transitions from the use case to the
// real-time delivery layers. The broker is the outbound queue the
// coordinator publishes into after releasing the per-service lock; the
// WebSocket hub and other consumers subscribe out of it.
package events

import (
	"log"
	"sync"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"
)

type Broker struct {
	mu     sync.RWMutex
	subs   []chan entities.NegotiationEvent
	buffer int
	closed bool
}

var _ interfaces.IEventPublisher = (*Broker)(nil)

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 64
	}
	return &Broker{buffer: buffer}
}

// Publish fans the event out to every subscriber without blocking the
// caller. A subscriber that has fallen behind its buffer misses the event;
// consumers reconcile via (service_id, type, version) on reconnect.
func (b *Broker) Publish(event entities.NegotiationEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			log.Printf("[events][broker] subscriber buffer full, dropping service_id=%s type=%s version=%d", event.ServiceID, event.Type, event.Version)
		}
	}
}

// Subscribe registers a new consumer. The returned channel is closed when
// the broker shuts down.
func (b *Broker) Subscribe() <-chan entities.NegotiationEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan entities.NegotiationEvent, b.buffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
