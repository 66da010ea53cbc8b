package bootstrap

import (
	"context"
	"log/slog"

	"roomly/internal/infra/notify"
	"roomly/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewAMQPConnection,
		NewPublisher,
		NewConsumer,
	),
	fx.Invoke(StartConsumer),
)

// NewAMQPConnection returns a nil connection when the broker is down.
// Publishing then fails per-event and is logged; bookings proceed.
func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config) *amqp.Connection {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		slog.Warn("amqp unreachable, booking notifications disabled", "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})

	return conn
}

func NewPublisher(conn *amqp.Connection, cfg config.Config) *notify.Publisher {
	return notify.NewPublisher(conn, cfg.AMQP.Queue)
}

func NewConsumer(conn *amqp.Connection, cfg config.Config) *notify.Consumer {
	return notify.NewConsumer(conn, cfg.AMQP.Queue, notify.SlogMailer{})
}

func StartConsumer(lc fx.Lifecycle, conn *amqp.Connection, consumer *notify.Consumer) {
	if conn == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := consumer.Run(); err != nil {
					slog.Warn("booking event consumer stopped", "error", err.Error())
				}
			}()
			return nil
		},
	})
}
