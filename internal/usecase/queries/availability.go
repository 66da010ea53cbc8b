package queries

import (
	"context"
	"fmt"
	"time"

	"roomly/internal/domain/booking"

	"github.com/google/uuid"
)

// Bookable hours for the per-day slot grid.
const (
	dayOpenHour  = 8
	dayCloseHour = 22
)

type AvailabilityQueries interface {
	// IsAvailable answers whether [start, end) on the room is free of
	// active bookings.
	IsAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error)
	// RoomDay returns the hourly slot grid for the room's bookable day.
	// The grid is derived from live booking rows on every call and is
	// never persisted.
	RoomDay(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*SlotView, error)
}

// BookingIntervalRepo reads active booking intervals straight from the
// store of record. Availability has no cache of its own; staleness here
// would reintroduce the double-booking race.
type BookingIntervalRepo interface {
	ActiveSlotsForRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]booking.TimeSlot, error)
	ExistsActiveOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingIntervalRepo
	rooms    RoomViewRepo
}

func NewAvailabilityQueries(bookings BookingIntervalRepo, rooms RoomViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{bookings: bookings, rooms: rooms}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return false, err
	}
	conflict, err := q.bookings.ExistsActiveOverlap(ctx, roomID, start, end)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (q *availabilityQueriesImpl) RoomDay(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*SlotView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}

	year, month, day := date.Date()
	dayStart := time.Date(year, month, day, dayOpenHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(year, month, day, dayCloseHour, 0, 0, 0, date.Location())

	taken, err := q.bookings.ActiveSlotsForRoom(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]*SlotView, 0, dayCloseHour-dayOpenHour)
	for h := dayOpenHour; h < dayCloseHour; h++ {
		bucket, err := booking.NewTimeSlot(time.Date(year, month, day, h, 0, 0, 0, date.Location()), 1)
		if err != nil {
			return nil, err
		}

		booked := false
		for _, t := range taken {
			if bucket.Overlaps(t) {
				booked = true
				break
			}
		}

		slots = append(slots, &SlotView{
			Label:  fmt.Sprintf("%02d:00", h),
			Start:  bucket.Start(),
			End:    bucket.End(),
			Booked: booked,
		})
	}
	return slots, nil
}
