package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking counts toward availability
// conflicts. Cancelled bookings free their interval.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}
