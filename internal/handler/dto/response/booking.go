package response

import (
	"fmt"
	"time"

	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	Reference       string    `json:"reference"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomName        string    `json:"roomName"`
	UserID          uuid.UUID `json:"userId"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	TotalPrice      string    `json:"totalPrice"`
	Status          string    `json:"status"`
	ProviderTxnID   *string   `json:"providerTxnId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		Reference:       rm.Reference,
		RoomID:          rm.RoomID,
		RoomName:        rm.RoomName,
		UserID:          rm.UserID,
		CheckIn:         rm.CheckIn,
		CheckOut:        rm.CheckOut,
		Guests:          rm.Guests,
		TotalPriceCents: rm.TotalPriceCents,
		TotalPrice:      formatCents(rm.TotalPriceCents),
		Status:          rm.Status,
		ProviderTxnID:   rm.ProviderTxnID,
		CreatedAt:       rm.CreatedAt,
	}
}

// formatCents renders a display amount. Arithmetic stays in cents; this
// conversion happens only at the response boundary.
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
