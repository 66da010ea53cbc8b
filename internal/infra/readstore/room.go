package readstore

import (
	"context"

	"roomly/internal/domain/room"
	"roomly/internal/infra"
	"roomly/internal/infra/db"
	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

const findRoomSQL = `
SELECT id, owner_id, name, hourly_rate_cents, discount_percent,
       discount_start, discount_end, is_available, images
FROM rooms
WHERE id = $1`

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var v queries.RoomView
	err := s.db.QueryRow(ctx, findRoomSQL, id).Scan(
		&v.ID,
		&v.OwnerID,
		&v.Name,
		&v.HourlyRateCents,
		&v.DiscountPercent,
		&v.DiscountStart,
		&v.DiscountEnd,
		&v.IsAvailable,
		&v.Images,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find room", err)
	}
	return &v, nil
}

const findRoomsByOwnerSQL = `
SELECT id, owner_id, name, hourly_rate_cents, discount_percent,
       discount_start, discount_end, is_available, images
FROM rooms
WHERE owner_id = $1
ORDER BY created_at`

func (s *RoomReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, findRoomsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list rooms by owner", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Name, &v.HourlyRateCents, &v.DiscountPercent,
			&v.DiscountStart, &v.DiscountEnd, &v.IsAvailable, &v.Images,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate room views", err)
	}
	return views, nil
}

// RoomEntityReader adapts the read store to the command side's RoomReader
// port, rehydrating the domain room so a row that violates the room
// invariants fails loudly instead of reaching the pricing path.
type RoomEntityReader struct {
	store *RoomReadStore
}

func NewRoomEntityReader(store *RoomReadStore) *RoomEntityReader {
	return &RoomEntityReader{store: store}
}

func (r *RoomEntityReader) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	view, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entity, err := room.NewRoom(
		view.ID, view.OwnerID, view.Name, view.HourlyRateCents,
		view.DiscountPercent, view.DiscountStart, view.DiscountEnd,
		view.IsAvailable, view.Images,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "room row violates domain invariants", err)
	}
	return entity, nil
}
