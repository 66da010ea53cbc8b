package response

import (
	"roomly/internal/usecase/queries"
)

type DashboardResponse struct {
	TotalBookings     int64              `json:"totalBookings"`
	TotalRevenueCents int64              `json:"totalRevenueCents"`
	TotalRevenue      string             `json:"totalRevenue"`
	Rooms             []*RoomSummary     `json:"rooms"`
	RecentBookings    []*BookingResponse `json:"recentBookings"`
}

// RoomSummary is the owner-facing room line on the dashboard.
type RoomSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HourlyRate  string `json:"hourlyRate"`
	IsAvailable bool   `json:"isAvailable"`
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	rooms := make([]*RoomSummary, len(view.Rooms))
	for i, r := range view.Rooms {
		rooms[i] = &RoomSummary{
			ID:          r.ID.String(),
			Name:        r.Name,
			HourlyRate:  formatCents(r.HourlyRateCents),
			IsAvailable: r.IsAvailable,
		}
	}
	recent := make([]*BookingResponse, len(view.RecentBookings))
	for i, b := range view.RecentBookings {
		recent[i] = FromBookingView(b)
	}
	return &DashboardResponse{
		TotalBookings:     view.TotalBookings,
		TotalRevenueCents: view.TotalRevenueCents,
		TotalRevenue:      formatCents(view.TotalRevenueCents),
		Rooms:             rooms,
		RecentBookings:    recent,
	}
}
