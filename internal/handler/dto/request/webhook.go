package request

import (
	"errors"

	"github.com/google/uuid"
)

// Webhook event types the payment provider delivers.
const (
	WebhookCheckoutCompleted = "checkout.completed"
	WebhookCheckoutExpired   = "checkout.expired"
)

type PaymentWebhookEvent struct {
	EventType     string    `json:"event_type"`
	BookingID     uuid.UUID `json:"booking_id"`
	ProviderTxnID string    `json:"provider_txn_id"`
}

// Validate stands in for binding checks: webhook payloads are decoded by
// hand so the raw bytes stay available for signature verification.
func (e PaymentWebhookEvent) Validate() error {
	if e.EventType == "" {
		return errors.New("event_type is required")
	}
	if e.EventType == WebhookCheckoutCompleted {
		if e.BookingID == uuid.Nil {
			return errors.New("booking_id is required")
		}
		if e.ProviderTxnID == "" {
			return errors.New("provider_txn_id is required")
		}
	}
	return nil
}
