package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models for the query side.

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	Reference       string    `json:"reference"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	UserID          uuid.UUID `json:"user_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	ProviderTxnID   *string   `json:"provider_txn_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type RoomView struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Name            string     `json:"name"`
	HourlyRateCents int64      `json:"hourly_rate_cents"`
	DiscountPercent float64    `json:"discount_percent"`
	DiscountStart   *time.Time `json:"discount_start,omitempty"`
	DiscountEnd     *time.Time `json:"discount_end,omitempty"`
	IsAvailable     bool       `json:"is_available"`
	Images          []string   `json:"images"`
}

// SlotView is one hourly bucket of the per-day availability grid.
type SlotView struct {
	Label  string    `json:"label"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booked bool      `json:"booked"`
}

type DashboardView struct {
	TotalBookings int64 `json:"total_bookings"`
	// TotalRevenueCents is booked value: the sum over non-cancelled
	// bookings regardless of payment status.
	TotalRevenueCents int64          `json:"total_revenue_cents"`
	Rooms             []*RoomView    `json:"rooms"`
	RecentBookings    []*BookingView `json:"recent_bookings"`
}
