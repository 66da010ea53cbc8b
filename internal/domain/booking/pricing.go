package booking

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidDiscountWindow = errors.New("discount window must be a non-empty ordered range")

// Discount is a time-bound percentage off the hourly rate. A zero percent
// or a missing window end disables the discount regardless of dates.
type Discount struct {
	percent float64
	start   *time.Time
	end     *time.Time
}

func NewDiscount(percent float64, start, end *time.Time) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, errors.New("discount percent must be between 0 and 100")
	}
	if percent > 0 && start != nil && end != nil && !start.Before(*end) {
		return Discount{}, ErrInvalidDiscountWindow
	}
	return Discount{percent: percent, start: start, end: end}, nil
}

func NoDiscount() Discount {
	return Discount{}
}

func (d Discount) Percent() float64 {
	return d.percent
}

// ActiveAt checks the window with inclusive bounds at both ends.
func (d Discount) ActiveAt(now time.Time) bool {
	if d.percent == 0 || d.start == nil || d.end == nil {
		return false
	}
	return !now.Before(*d.start) && !now.After(*d.end)
}

// Quote prices a booking of the given whole-hour duration at the rate and
// discount state in effect at now. Deterministic and side-effect free; the
// result is fixed at booking time and never recomputed.
func Quote(rateCents int64, d Discount, hours int, now time.Time) (Money, error) {
	if hours <= 0 {
		return Money{}, ErrInvalidDuration
	}
	if rateCents < 0 {
		return Money{}, errors.New("hourly rate cannot be negative")
	}

	total := rateCents * int64(hours)
	if d.ActiveAt(now) {
		discounted := float64(total) * (100.0 - d.percent) / 100.0
		total = int64(math.Round(discounted))
	}
	return NewMoney(total)
}
