package booking

import (
	"roomly/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{clock: clock}
}

// CreateBooking assembles a pending booking priced at the room's rate and
// discount state at this instant. The reference is generated fresh each
// call; the caller retries on store-level collisions.
func (f *Factory) CreateBooking(
	room RoomSpec,
	userID uuid.UUID,
	slot TimeSlot,
	guests int,
) (*Booking, error) {
	if room.Archived {
		return nil, ErrRoomArchived
	}

	price, err := Quote(room.HourlyRateCents, room.Discount, slot.Hours(), f.clock.Now())
	if err != nil {
		return nil, err
	}

	ref, err := NewReference()
	if err != nil {
		return nil, err
	}

	return NewBooking(ref, room.ID, userID, slot, guests, price)
}
