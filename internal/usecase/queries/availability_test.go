//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roomly/internal/domain/booking"
	"roomly/internal/infra"
	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeIntervalRepo struct {
	slots   []booking.TimeSlot
	overlap bool
	err     error
}

func (r *fakeIntervalRepo) ActiveSlotsForRoom(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]booking.TimeSlot, error) {
	return r.slots, r.err
}

func (r *fakeIntervalRepo) ExistsActiveOverlap(_ context.Context, _ uuid.UUID, _, _ time.Time) (bool, error) {
	return r.overlap, r.err
}

type fakeRoomViewRepo struct {
	view *queries.RoomView
	err  error
}

func (r *fakeRoomViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.RoomView, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.view, nil
}

func (r *fakeRoomViewRepo) FindByOwnerID(_ context.Context, _ uuid.UUID) ([]*queries.RoomView, error) {
	return []*queries.RoomView{r.view}, r.err
}

func mustSlot(t *testing.T, start string, hours int) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(ts(start), hours)
	require.NoError(t, err)
	return slot
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	rooms := &fakeRoomViewRepo{view: &queries.RoomView{ID: roomID}}

	t.Run("free interval", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{overlap: false}, rooms)
		available, err := q.IsAvailable(ctx, roomID, ts("2025-06-20T14:00:00Z"), ts("2025-06-20T16:00:00Z"))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("taken interval", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{overlap: true}, rooms)
		available, err := q.IsAvailable(ctx, roomID, ts("2025-06-20T14:00:00Z"), ts("2025-06-20T16:00:00Z"))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("unknown room", func(t *testing.T) {
		missing := &fakeRoomViewRepo{err: infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)}
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{}, missing)
		_, err := q.IsAvailable(ctx, roomID, ts("2025-06-20T14:00:00Z"), ts("2025-06-20T16:00:00Z"))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomDay(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	rooms := &fakeRoomViewRepo{view: &queries.RoomView{ID: roomID}}

	t.Run("empty day is fully open", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{}, rooms)
		slots, err := q.RoomDay(ctx, roomID, ts("2025-06-20T00:00:00Z"))
		require.NoError(t, err)

		require.Len(t, slots, 14)
		assert.Equal(t, "08:00", slots[0].Label)
		assert.Equal(t, "21:00", slots[len(slots)-1].Label)
		for _, s := range slots {
			assert.False(t, s.Booked, "slot %s should be open", s.Label)
			assert.Equal(t, time.Hour, s.End.Sub(s.Start))
		}
	})

	t.Run("booked interval marks exactly its buckets", func(t *testing.T) {
		intervals := &fakeIntervalRepo{slots: []booking.TimeSlot{
			mustSlot(t, "2025-06-20T14:00:00Z", 2), // [14:00, 16:00)
		}}
		q := queries.NewAvailabilityQueries(intervals, rooms)
		slots, err := q.RoomDay(ctx, roomID, ts("2025-06-20T00:00:00Z"))
		require.NoError(t, err)

		booked := map[string]bool{}
		for _, s := range slots {
			booked[s.Label] = s.Booked
		}
		assert.False(t, booked["13:00"])
		assert.True(t, booked["14:00"])
		assert.True(t, booked["15:00"])
		// Half-open: the 16:00 bucket starts exactly where the booking ends.
		assert.False(t, booked["16:00"])
	})

	t.Run("partial hour booking still blocks its bucket", func(t *testing.T) {
		slot, err := booking.NewTimeSlotFromRange(ts("2025-06-20T14:30:00Z"), ts("2025-06-20T15:30:00Z"))
		require.NoError(t, err)
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{slots: []booking.TimeSlot{slot}}, rooms)

		slots, err := q.RoomDay(ctx, roomID, ts("2025-06-20T00:00:00Z"))
		require.NoError(t, err)

		booked := map[string]bool{}
		for _, s := range slots {
			booked[s.Label] = s.Booked
		}
		assert.True(t, booked["14:00"])
		assert.True(t, booked["15:00"])
		assert.False(t, booked["16:00"])
	})

	t.Run("unknown room", func(t *testing.T) {
		missing := &fakeRoomViewRepo{err: infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)}
		q := queries.NewAvailabilityQueries(&fakeIntervalRepo{}, missing)
		_, err := q.RoomDay(ctx, roomID, ts("2025-06-20T00:00:00Z"))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
