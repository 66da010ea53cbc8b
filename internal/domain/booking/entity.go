package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrRoomArchived      = errors.New("room is archived")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrBookingCancelled  = errors.New("booking is cancelled")
)

// RoomSpec is the slice of room state the engine prices against. It is a
// snapshot taken at creation time; later room edits never touch existing
// bookings.
type RoomSpec struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	HourlyRateCents int64
	Discount        Discount
	Archived        bool
}

type Booking struct {
	id            uuid.UUID
	reference     Reference
	roomID        uuid.UUID
	userID        uuid.UUID
	slot          TimeSlot
	guests        int
	price         Money
	status        Status
	providerTxnID *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	reference Reference,
	roomID, userID uuid.UUID,
	slot TimeSlot,
	guests int,
	price Money,
) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	return &Booking{
		id:        uuid.New(),
		reference: reference,
		roomID:    roomID,
		userID:    userID,
		slot:      slot,
		guests:    guests,
		price:     price,
		status:    StatusPending,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference Reference,
	roomID, userID uuid.UUID,
	slot TimeSlot,
	guests int,
	price Money,
	status Status,
	providerTxnID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		roomID:        roomID,
		userID:        userID,
		slot:          slot,
		guests:        guests,
		price:         price,
		status:        status,
		providerTxnID: providerTxnID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkPaid transitions pending → paid. Calling it on an already-paid
// booking is a no-op so payment-provider retries stay safe; the original
// transaction id is kept.
func (b *Booking) MarkPaid(providerTxnID string) error {
	switch b.status {
	case StatusPaid:
		return nil
	case StatusCancelled:
		return ErrBookingCancelled
	}
	b.status = StatusPaid
	b.providerTxnID = &providerTxnID
	return nil
}

// Cancel transitions pending → cancelled, freeing the interval. Paid
// bookings cannot be cancelled through this path.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusPaid:
		return ErrAlreadyPaid
	case StatusCancelled:
		return ErrBookingCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Reference() Reference   { return b.reference }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) Slot() TimeSlot         { return b.slot }
func (b *Booking) Guests() int            { return b.guests }
func (b *Booking) Price() Money           { return b.price }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) ProviderTxnID() *string { return b.providerTxnID }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
