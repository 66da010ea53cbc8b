// Package notify is the outbound notification channel: booking events are
// published to a durable queue after the database write commits, and a
// consumer turns them into guest emails. Delivery is best-effort by
// contract; a broker outage never fails a booking.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"roomly/internal/pkg/errs"
	"roomly/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn  *amqp.Connection
	queue string
}

func NewPublisher(conn *amqp.Connection, queue string) *Publisher {
	return &Publisher{conn: conn, queue: queue}
}

func (p *Publisher) Publish(ctx context.Context, event commands.BookingEvent) error {
	if p.conn == nil {
		return errs.New("amqp connection not configured")
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	// Durable so events survive broker restarts; declare is idempotent.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare booking queue")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}
