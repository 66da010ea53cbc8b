package components

import (
	"roomly/internal/domain/booking"
	"roomly/internal/infra/notify"
	"roomly/internal/infra/payment"
	"roomly/internal/pkg/clock"
	"roomly/internal/pkg/config"
	"roomly/internal/usecase/commands"
	"roomly/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	fx.Annotate(
		payment.NewClient,
		fx.As(new(commands.PaymentProvider)),
	),
	fx.Annotate(
		func(p *notify.Publisher) *notify.Publisher { return p },
		fx.As(new(commands.EventPublisher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		NewDashboardQueries,
	),
)

func NewDashboardQueries(repo queries.DashboardViewRepo, rooms queries.RoomViewRepo, dashCache queries.DashboardCache, cfg config.Config) queries.DashboardQueries {
	return queries.NewDashboardQueries(repo, rooms, dashCache, cfg.Dashboard.RecentLimit)
}
