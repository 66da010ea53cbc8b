package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DashboardCache keeps owner rollups in redis for a short TTL. Every
// failure degrades to a miss; the rollup is always recomputable from the
// booking store.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

func (c *DashboardCache) key(ownerID uuid.UUID) string {
	return "dashboard:" + ownerID.String()
}

func (c *DashboardCache) Get(ctx context.Context, ownerID uuid.UUID) (*queries.DashboardView, bool) {
	if c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("dashboard cache read failed", "owner_id", ownerID.String(), "error", err.Error())
		}
		return nil, false
	}

	var view queries.DashboardView
	if err := json.Unmarshal(payload, &view); err != nil {
		slog.Warn("dashboard cache entry is corrupt", "owner_id", ownerID.String(), "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *DashboardCache) Set(ctx context.Context, ownerID uuid.UUID, view *queries.DashboardView) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		slog.Warn("failed to marshal dashboard view for cache", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, c.key(ownerID), payload, c.ttl).Err(); err != nil {
		slog.Warn("dashboard cache write failed", "owner_id", ownerID.String(), "error", err.Error())
	}
}
