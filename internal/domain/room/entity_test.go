//go:build unit

package room_test

import (
	"testing"
	"time"

	"roomly/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	start, _ := time.Parse(time.RFC3339, "2025-06-01T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2025-06-30T23:59:59Z")

	cases := []struct {
		name     string
		roomName string
		rate     int64
		percent  float64
		start    *time.Time
		end      *time.Time
		errIs    error
	}{
		{name: "plain room", roomName: "Skyline Loft", rate: 30000},
		{name: "discounted room", roomName: "Skyline Loft", rate: 30000, percent: 20, start: &start, end: &end},
		{name: "empty name", roomName: "", rate: 30000, errIs: room.ErrEmptyName},
		{name: "negative rate", roomName: "Skyline Loft", rate: -1, errIs: room.ErrInvalidHourlyRate},
		{name: "percent out of range", roomName: "Skyline Loft", rate: 30000, percent: 120, start: &start, end: &end, errIs: room.ErrInvalidDiscount},
		{name: "discount without window", roomName: "Skyline Loft", rate: 30000, percent: 20, errIs: room.ErrUnpairedDiscount},
		{name: "inverted window", roomName: "Skyline Loft", rate: 30000, percent: 20, start: &end, end: &start, errIs: room.ErrUnpairedDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := room.NewRoom(uuid.New(), uuid.New(), tc.roomName, tc.rate, tc.percent, tc.start, tc.end, true, nil)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.False(t, r.Archived())
		})
	}
}

func TestArchived(t *testing.T) {
	r, err := room.NewRoom(uuid.New(), uuid.New(), "Skyline Loft", 30000, 0, nil, nil, false, nil)
	require.NoError(t, err)
	assert.True(t, r.Archived())
}
