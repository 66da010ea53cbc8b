package writerepo

import (
	"context"

	"roomly/internal/domain/booking"
	"roomly/internal/infra"
	"roomly/internal/infra/db"
	"roomly/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, reference, room_id, user_id, check_in, check_out,
    guests, total_price_cents, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Create relies on the store's exclusion constraint for overlap safety:
// the availability check and the insert are one atomic unit, so two
// concurrent writers for the same interval cannot both succeed.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, createBookingSQL,
		b.ID(),
		b.Reference().String(),
		b.RoomID(),
		b.UserID(),
		b.Slot().Start(),
		b.Slot().End(),
		b.Guests(),
		b.Price().Cents(),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to create booking", err)
	}
	return nil
}

const findBookingSQL = `
SELECT id, reference, room_id, user_id, check_in, check_out,
       guests, total_price_cents, status, provider_txn_id,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) Find(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	return r.scanSnapshot(ctx, tx, findBookingSQL, id)
}

// FindForUpdate serializes status transitions on the row so redundant
// payment confirmations observe each other.
func (r *BookingRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	return r.scanSnapshot(ctx, tx, findBookingSQL+" FOR UPDATE", id)
}

func (r *BookingRepository) scanSnapshot(ctx context.Context, tx db.DBTX, sql string, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var snap commands.BookingSnapshot
	err := tx.QueryRow(ctx, sql, id).Scan(
		&snap.ID,
		&snap.Reference,
		&snap.RoomID,
		&snap.UserID,
		&snap.CheckIn,
		&snap.CheckOut,
		&snap.Guests,
		&snap.TotalPriceCents,
		&snap.Status,
		&snap.ProviderTxnID,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking", err)
	}
	return &snap, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, provider_txn_id = $3, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, providerTxnID *string) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String(), providerTxnID)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found for status update", nil)
	}
	return nil
}
