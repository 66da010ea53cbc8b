package components

import (
	"roomly/internal/infra/cache"
	"roomly/internal/infra/db"
	"roomly/internal/infra/readstore"
	"roomly/internal/infra/writerepo"
	"roomly/internal/pkg/config"
	"roomly/internal/usecase/commands"
	"roomly/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.BookingIntervalRepo)),
		),
		readstore.NewRoomReadStore,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readstore.NewRoomEntityReader,
			fx.As(new(commands.RoomReader)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardViewRepo)),
		),
		fx.Annotate(
			NewDashboardCache,
			fx.As(new(queries.DashboardCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) commands.TxBeginner {
	return pool
}

func NewDashboardCache(client *redis.Client, cfg config.Config) *cache.DashboardCache {
	return cache.NewDashboardCache(client, cfg.Dashboard.CacheTTL)
}
