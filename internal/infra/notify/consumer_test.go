//go:build unit

package notify_test

import (
	"testing"
	"time"

	"roomly/internal/infra/notify"
	"roomly/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmail(t *testing.T) {
	checkIn, _ := time.Parse(time.RFC3339, "2025-06-20T14:00:00Z")
	event := commands.BookingEvent{
		Type:        commands.EventBookingCreated,
		BookingID:   uuid.New(),
		Reference:   "A1B2C3",
		UserID:      uuid.New(),
		RoomName:    "Skyline Loft",
		CheckIn:     checkIn,
		Hours:       2,
		AmountCents: 48000,
	}

	t.Run("created", func(t *testing.T) {
		subject, body := notify.RenderEmail(event)
		assert.Equal(t, "Booking A1B2C3 confirmed", subject)
		assert.Contains(t, body, "Reference: A1B2C3")
		assert.Contains(t, body, "Room: Skyline Loft")
		assert.Contains(t, body, "Date: 2025-06-20")
		assert.Contains(t, body, "Time: 14:00")
		assert.Contains(t, body, "Duration: 2 hour(s)")
		assert.Contains(t, body, "Amount: 480.00")
	})

	t.Run("paid", func(t *testing.T) {
		paid := event
		paid.Type = commands.EventBookingPaid
		subject, _ := notify.RenderEmail(paid)
		assert.Equal(t, "Payment received for booking A1B2C3", subject)
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled := event
		cancelled.Type = commands.EventBookingCancelled
		subject, _ := notify.RenderEmail(cancelled)
		assert.Equal(t, "Booking A1B2C3 cancelled", subject)
	})
}

func TestRecipient(t *testing.T) {
	userID := uuid.New()

	t.Run("prefers the email claim", func(t *testing.T) {
		event := commands.BookingEvent{UserID: userID, UserEmail: "guest@example.com"}
		assert.Equal(t, "guest@example.com", notify.Recipient(event))
	})

	t.Run("falls back to the user id", func(t *testing.T) {
		event := commands.BookingEvent{UserID: userID}
		assert.Equal(t, userID.String(), notify.Recipient(event))
	})
}
