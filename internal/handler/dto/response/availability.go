package response

import (
	"time"

	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotCheckResponse struct {
	Available bool `json:"available"`
}

type SlotResponse struct {
	Label  string    `json:"label"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booked bool      `json:"booked"`
}

type RoomDayResponse struct {
	RoomID uuid.UUID       `json:"roomId"`
	Date   string          `json:"date"`
	Slots  []*SlotResponse `json:"slots"`
}

func FromSlotViews(roomID uuid.UUID, date time.Time, views []*queries.SlotView) *RoomDayResponse {
	slots := make([]*SlotResponse, len(views))
	for i, v := range views {
		slots[i] = &SlotResponse{
			Label:  v.Label,
			Start:  v.Start,
			End:    v.End,
			Booked: v.Booked,
		}
	}
	return &RoomDayResponse{
		RoomID: roomID,
		Date:   date.Format("2006-01-02"),
		Slots:  slots,
	}
}
