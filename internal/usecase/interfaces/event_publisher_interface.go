package interfaces

import "gruas_rd/internal/domain/entities"

// IEventPublisher hands a NegotiationEvent to the real-time broadcast
// layer. Publish must not block the caller: the per-negotiation critical
// section has already been released when events are emitted.
type IEventPublisher interface {
	Publish(event entities.NegotiationEvent)
}

// IPushNotifier requests a push notification for the counterpart actor.
// Delivery itself (APNs/FCM plumbing) lives outside this service.
type IPushNotifier interface {
	Notify(event entities.NegotiationEvent)
}
