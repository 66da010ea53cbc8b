package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"roomly/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Mailer sends a single message. The production implementation fronts the
// external email service; tests use a recorder.
type Mailer interface {
	Send(to, subject, body string) error
}

// SlogMailer stands in for the external email service by logging the
// rendered message. Useful in development and as the default when no
// provider is configured.
type SlogMailer struct{}

func (SlogMailer) Send(to, subject, body string) error {
	slog.Info("booking email dispatched", "to", to, "subject", subject, "body", body)
	return nil
}

// Consumer drains booking events and sends confirmation emails. Malformed
// messages are rejected without requeue so a poison message cannot wedge
// the queue.
type Consumer struct {
	conn   *amqp.Connection
	queue  string
	mailer Mailer
}

func NewConsumer(conn *amqp.Connection, queue string, mailer Mailer) *Consumer {
	return &Consumer{conn: conn, queue: queue, mailer: mailer}
}

// Run consumes until the connection closes. Callers run it in a goroutine
// and simply restart on error; losing notifications is acceptable, losing
// bookings is not.
func (c *Consumer) Run() error {
	if c.conn == nil {
		return fmt.Errorf("amqp connection not configured")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handle(d.Body); err != nil {
			slog.Warn("booking event handling failed", "error", err.Error())
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("deliveries channel closed")
}

func (c *Consumer) handle(body []byte) error {
	var event commands.BookingEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal booking event: %w", err)
	}

	subject, text := RenderEmail(event)
	return c.mailer.Send(Recipient(event), subject, text)
}

// Recipient picks the address the message goes to. Events raised inside a
// user request carry the verified email claim; events without one fall
// back to the user id, a recipient key the email service resolves through
// the identity provider.
func Recipient(event commands.BookingEvent) string {
	if event.UserEmail != "" {
		return event.UserEmail
	}
	return event.UserID.String()
}

// RenderEmail formats the confirmation message: reference, date, time,
// duration, amount.
func RenderEmail(event commands.BookingEvent) (subject, body string) {
	switch event.Type {
	case commands.EventBookingPaid:
		subject = fmt.Sprintf("Payment received for booking %s", event.Reference)
	case commands.EventBookingCancelled:
		subject = fmt.Sprintf("Booking %s cancelled", event.Reference)
	default:
		subject = fmt.Sprintf("Booking %s confirmed", event.Reference)
	}

	body = fmt.Sprintf(
		"Reference: %s\nRoom: %s\nDate: %s\nTime: %s\nDuration: %d hour(s)\nAmount: %.2f",
		event.Reference,
		event.RoomName,
		event.CheckIn.Format("2006-01-02"),
		event.CheckIn.Format("15:04"),
		event.Hours,
		float64(event.AmountCents)/100.0,
	)
	return subject, body
}
