// Package notifications requests push notifications for negotiation
// updates. Actual delivery (APNs/FCM) is handled by the platform's
// notification service; this adapter only hands the request over.
package notifications

import (
	"log"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/internal/usecase/interfaces"
)

// LogPushNotifier is the default dispatcher used when no notification
// backend is configured. It records the request so local and staging runs
// can be traced end to end.
type LogPushNotifier struct{}

var _ interfaces.IPushNotifier = (*LogPushNotifier)(nil)

func NewLogPushNotifier() *LogPushNotifier {
	return &LogPushNotifier{}
}

func (n *LogPushNotifier) Notify(event entities.NegotiationEvent) {
	if event.Amount != nil {
		log.Printf("[push][notifier] negotiation update service_id=%s type=%s amount=%s version=%d", event.ServiceID, event.Type, event.Amount.String(), event.Version)
		return
	}
	log.Printf("[push][notifier] negotiation update service_id=%s type=%s version=%d", event.ServiceID, event.Type, event.Version)
}
