package commands

import (
	"context"
	"time"

	"roomly/internal/domain/booking"
	"roomly/internal/domain/room"
	"roomly/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner is the connection surface the command side needs: plain
// queries plus transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BookingSnapshot keeps the command layer off the read-side view types.
type BookingSnapshot struct {
	ID              uuid.UUID
	Reference       string
	RoomID          uuid.UUID
	UserID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPriceCents int64
	Status          string
	ProviderTxnID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingRepository interface {
	// Create inserts the booking. The store rejects overlapping active
	// intervals and duplicate references atomically; conflicts surface as
	// repository errors with the matching kind.
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Find(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	// FindForUpdate locks the row so payment-status transitions serialize
	// under concurrent provider retries.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, providerTxnID *string) error
}

// RoomReader rehydrates the domain room, so row data has passed the room
// invariants before pricing sees it.
type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

// PaymentProvider is the external checkout service. It is only ever asked
// for a redirect target; payment outcomes arrive through the webhook.
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, bookingID uuid.UUID, reference string, amountCents int64) (redirectURL string, err error)
}

// BookingEvent carries everything the notification channel needs to render
// a confirmation email. Delivery is best-effort and happens strictly after
// the transactional write commits.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   uuid.UUID `json:"booking_id"`
	Reference   string    `json:"reference"`
	UserID      uuid.UUID `json:"user_id"`
	UserEmail   string    `json:"user_email,omitempty"`
	RoomName    string    `json:"room_name"`
	CheckIn     time.Time `json:"check_in"`
	Hours       int       `json:"hours"`
	AmountCents int64     `json:"amount_cents"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingPaid      = "booking.paid"
	EventBookingCancelled = "booking.cancelled"
)

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
