//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roomly/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start string, hours int) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(ts(start), hours)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("whole hours", func(t *testing.T) {
		slot := mustSlot(t, "2025-06-10T14:00:00Z", 2)
		assert.Equal(t, ts("2025-06-10T14:00:00Z"), slot.Start())
		assert.Equal(t, ts("2025-06-10T16:00:00Z"), slot.End())
		assert.Equal(t, 2, slot.Hours())
	})

	t.Run("zero duration rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(ts("2025-06-10T14:00:00Z"), 0)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(ts("2025-06-10T14:00:00Z"), -1)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	})

	t.Run("range constructor rejects inverted bounds", func(t *testing.T) {
		_, err := booking.NewTimeSlotFromRange(ts("2025-06-10T16:00:00Z"), ts("2025-06-10T14:00:00Z"))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)

		_, err = booking.NewTimeSlotFromRange(ts("2025-06-10T14:00:00Z"), ts("2025-06-10T14:00:00Z"))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := mustSlot(t, "2025-06-10T14:00:00Z", 2) // [14:00, 16:00)

	cases := []struct {
		name  string
		other booking.TimeSlot
		want  bool
	}{
		{name: "identical interval", other: mustSlot(t, "2025-06-10T14:00:00Z", 2), want: true},
		{name: "contained interval", other: mustSlot(t, "2025-06-10T14:30:00Z", 1), want: true},
		{name: "partial overlap at head", other: mustSlot(t, "2025-06-10T13:00:00Z", 2), want: true},
		{name: "partial overlap at tail", other: mustSlot(t, "2025-06-10T15:00:00Z", 2), want: true},
		{name: "surrounding interval", other: mustSlot(t, "2025-06-10T13:00:00Z", 4), want: true},
		{name: "back-to-back before", other: mustSlot(t, "2025-06-10T12:00:00Z", 2), want: false},
		{name: "back-to-back after", other: mustSlot(t, "2025-06-10T16:00:00Z", 2), want: false},
		{name: "disjoint earlier", other: mustSlot(t, "2025-06-10T08:00:00Z", 2), want: false},
		{name: "disjoint later", other: mustSlot(t, "2025-06-10T20:00:00Z", 2), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestTimeSlotToTstzrange(t *testing.T) {
	t.Run("whole seconds", func(t *testing.T) {
		slot := mustSlot(t, "2025-06-10T14:00:00Z", 2)
		assert.Equal(t, "[2025-06-10T14:00:00Z,2025-06-10T16:00:00Z)", slot.ToTstzrange())
	})

	t.Run("sub-second bounds keep precision", func(t *testing.T) {
		slot, err := booking.NewTimeSlotFromRange(
			ts("2025-06-10T14:00:00Z").Add(500*time.Millisecond),
			ts("2025-06-10T15:00:00Z"),
		)
		require.NoError(t, err)
		assert.Equal(t, "[2025-06-10T14:00:00.5Z,2025-06-10T15:00:00Z)", slot.ToTstzrange())
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("units is display only", func(t *testing.T) {
		m, err := booking.NewMoney(48000)
		require.NoError(t, err)
		assert.InDelta(t, 480.0, m.Units(), 0.0001)
	})
}

func TestTimeSlotDuration(t *testing.T) {
	slot := mustSlot(t, "2025-06-10T08:00:00Z", 14)
	assert.Equal(t, 14*time.Hour, slot.Duration())
}
