package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	DurationHours int       `json:"duration_hours" binding:"required,min=1"`
	Guests        int       `json:"guests" binding:"required,min=1"`
}

type CheckAvailabilityRequest struct {
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	DurationHours int       `json:"duration_hours" binding:"required,min=1"`
}

type ConfirmPaymentRequest struct {
	ProviderTxnID string `json:"provider_txn_id" binding:"required"`
}

func (r ConfirmPaymentRequest) TxnID() string {
	return strings.TrimSpace(r.ProviderTxnID)
}
