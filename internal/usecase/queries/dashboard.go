package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type DashboardQueries interface {
	// OwnerDashboard rolls up bookings across all rooms the owner holds.
	// The result is derived state: it can be recomputed from the booking
	// store at any time, so a short-TTL cache in front is safe.
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*DashboardView, error)
}

type DashboardViewRepo interface {
	AggregateByOwner(ctx context.Context, ownerID uuid.UUID, recentLimit int) (*DashboardView, error)
}

// DashboardCache is best-effort. Implementations must treat failures as
// misses; the rollup always remains computable from the store.
type DashboardCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*DashboardView, bool)
	Set(ctx context.Context, ownerID uuid.UUID, view *DashboardView)
}

type dashboardQueriesImpl struct {
	repo        DashboardViewRepo
	rooms       RoomViewRepo
	cache       DashboardCache
	recentLimit int
}

func NewDashboardQueries(repo DashboardViewRepo, rooms RoomViewRepo, cache DashboardCache, recentLimit int) DashboardQueries {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &dashboardQueriesImpl{repo: repo, rooms: rooms, cache: cache, recentLimit: recentLimit}
}

func (q *dashboardQueriesImpl) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*DashboardView, error) {
	if q.cache != nil {
		if view, ok := q.cache.Get(ctx, ownerID); ok {
			return view, nil
		}
	}

	view, err := q.repo.AggregateByOwner(ctx, ownerID, q.recentLimit)
	if err != nil {
		return nil, err
	}

	rooms, err := q.rooms.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	view.Rooms = rooms

	if q.cache != nil {
		q.cache.Set(ctx, ownerID, view)
		slog.Debug("dashboard rollup cached", "owner_id", ownerID.String())
	}
	return view, nil
}
