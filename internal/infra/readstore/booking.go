package readstore

import (
	"context"
	"time"

	"roomly/internal/domain/booking"
	"roomly/internal/infra"
	"roomly/internal/infra/db"
	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingViewSQL = `
SELECT b.id, b.reference, b.room_id, r.name, b.user_id,
       b.check_in, b.check_out, b.guests, b.total_price_cents,
       b.status, b.provider_txn_id, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, findBookingViewSQL, id)
	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking view", err)
	}
	return view, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.reference, b.room_id, r.name, b.user_id,
       b.check_in, b.check_out, b.guests, b.total_price_cents,
       b.status, b.provider_txn_id, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, findBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

const activeSlotsForRoomSQL = `
SELECT check_in, check_out
FROM bookings
WHERE room_id = $1
  AND status <> 'cancelled'
  AND check_in < $3
  AND check_out > $2
ORDER BY check_in`

// ActiveSlotsForRoom returns active booking intervals touching [from, to),
// using the same half-open predicate the write path's exclusion constraint
// enforces.
func (s *BookingReadStore) ActiveSlotsForRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]booking.TimeSlot, error) {
	rows, err := s.db.Query(ctx, activeSlotsForRoomSQL, roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to load booking intervals", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking interval", err)
		}
		slot, err := booking.NewTimeSlotFromRange(checkIn, checkOut)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "persisted booking interval is invalid", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate booking intervals", err)
	}
	return slots, nil
}

// The range predicate matches the expression the bookings exclusion
// constraint indexes, so reads and the write-path guarantee agree.
const existsActiveOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE room_id = $1
      AND status <> 'cancelled'
      AND tstzrange(check_in, check_out) && $2::tstzrange
)`

func (s *BookingReadStore) ExistsActiveOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error) {
	slot, err := booking.NewTimeSlotFromRange(start, end)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "invalid availability interval", err)
	}
	var exists bool
	if err := s.db.QueryRow(ctx, existsActiveOverlapSQL, roomID, slot.ToTstzrange()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to check overlap", err)
	}
	return exists, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.Reference,
		&v.RoomID,
		&v.RoomName,
		&v.UserID,
		&v.CheckIn,
		&v.CheckOut,
		&v.Guests,
		&v.TotalPriceCents,
		&v.Status,
		&v.ProviderTxnID,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate booking views", err)
	}
	return views, nil
}
