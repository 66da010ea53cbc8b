package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive whole number of hours")
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
)

// TimeSlot is a half-open interval [start, end). A slot ending at 10:00
// does not overlap a slot starting at 10:00.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start time.Time, hours int) (TimeSlot, error) {
	if hours <= 0 {
		return TimeSlot{}, ErrInvalidDuration
	}
	return TimeSlot{
		start: start,
		end:   start.Add(time.Duration(hours) * time.Hour),
	}, nil
}

// NewTimeSlotFromRange builds a slot from explicit bounds. Used when
// reconstructing persisted bookings, where the invariant already holds.
func NewTimeSlotFromRange(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Hours() int {
	return int(ts.Duration() / time.Hour)
}

// Overlaps implements the strict half-open overlap test. Using <= or >=
// here would wrongly reject back-to-back bookings.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// ToTstzrange renders the slot as a half-open tstzrange literal, the same
// range expression the bookings exclusion constraint indexes.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339Nano), ts.end.Format(time.RFC3339Nano))
}

// Money is an amount in the currency's minor unit.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Units renders the amount in major units. Display only; arithmetic stays
// in cents.
func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}
