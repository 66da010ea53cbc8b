package readstore

import (
	"context"

	"roomly/internal/infra"
	"roomly/internal/infra/db"
	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(db db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

// Revenue is booked value: every non-cancelled booking counts at its
// creation-time price, paid or not.
const dashboardTotalsSQL = `
SELECT COUNT(*), COALESCE(SUM(b.total_price_cents), 0)
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE r.owner_id = $1
  AND b.status <> 'cancelled'`

const dashboardRecentSQL = `
SELECT b.id, b.reference, b.room_id, r.name, b.user_id,
       b.check_in, b.check_out, b.guests, b.total_price_cents,
       b.status, b.provider_txn_id, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE r.owner_id = $1
ORDER BY b.created_at DESC
LIMIT $2`

func (s *DashboardReadStore) AggregateByOwner(ctx context.Context, ownerID uuid.UUID, recentLimit int) (*queries.DashboardView, error) {
	var view queries.DashboardView
	err := s.db.QueryRow(ctx, dashboardTotalsSQL, ownerID).Scan(
		&view.TotalBookings,
		&view.TotalRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to aggregate dashboard totals", err)
	}

	rows, err := s.db.Query(ctx, dashboardRecentSQL, ownerID, recentLimit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to load recent bookings", err)
	}
	defer rows.Close()

	recent, err := collectBookingViews(rows)
	if err != nil {
		return nil, err
	}
	view.RecentBookings = recent
	return &view, nil
}
