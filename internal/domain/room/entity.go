// Package room holds the read-side view of room inventory the booking
// engine consumes. Room metadata editing lives outside the engine; only
// the fields pricing and availability need are modeled here.
package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("room name cannot be empty")
	ErrInvalidHourlyRate = errors.New("hourly rate cannot be negative")
	ErrInvalidDiscount   = errors.New("discount percent must be between 0 and 100")
	ErrUnpairedDiscount  = errors.New("discount requires a non-empty ordered window")
)

type Room struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	hourlyRateCents int64
	discountPercent float64
	discountStart   *time.Time
	discountEnd     *time.Time
	available       bool
	images          []string
}

func NewRoom(
	id, ownerID uuid.UUID,
	name string,
	hourlyRateCents int64,
	discountPercent float64,
	discountStart, discountEnd *time.Time,
	available bool,
	images []string,
) (*Room, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if hourlyRateCents < 0 {
		return nil, ErrInvalidHourlyRate
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, ErrInvalidDiscount
	}
	if discountPercent > 0 {
		if discountStart == nil || discountEnd == nil || !discountStart.Before(*discountEnd) {
			return nil, ErrUnpairedDiscount
		}
	}
	return &Room{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		hourlyRateCents: hourlyRateCents,
		discountPercent: discountPercent,
		discountStart:   discountStart,
		discountEnd:     discountEnd,
		available:       available,
		images:          images,
	}, nil
}

// Archived rooms stay readable for existing bookings but reject new ones.
func (r *Room) Archived() bool {
	return !r.available
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) OwnerID() uuid.UUID        { return r.ownerID }
func (r *Room) Name() string              { return r.name }
func (r *Room) HourlyRateCents() int64    { return r.hourlyRateCents }
func (r *Room) DiscountPercent() float64  { return r.discountPercent }
func (r *Room) DiscountStart() *time.Time { return r.discountStart }
func (r *Room) DiscountEnd() *time.Time   { return r.discountEnd }
func (r *Room) Available() bool           { return r.available }
func (r *Room) Images() []string          { return r.images }
