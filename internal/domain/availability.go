package domain

import "math"

// Availability represents the derived slot accounting for a session.
// It is recomputed from the booking set on every read, never cached.
type Availability struct {
	Capacity        int
	BookedSlots     int
	AvailableSlots  int // Clamped at 0, see Oversubscribed
	UtilizationRate int // Percent, 0-100+ (rounded)
}

// CalculateAvailability derives slot counts for a session with the given
// capacity from its bookings. Cancelled bookings never count.
func CalculateAvailability(capacity int, bookings []*Booking) Availability {
	booked := 0
	for _, b := range bookings {
		if b.IsActive() {
			booked++
		}
	}
	return NewAvailability(capacity, booked)
}

// NewAvailability derives slot counts from an already-computed booked count.
// A booked count above capacity means corrupted data; AvailableSlots is
// clamped at 0 instead of going negative, and Oversubscribed reports the
// condition so callers can log it.
func NewAvailability(capacity, bookedSlots int) Availability {
	available := capacity - bookedSlots
	if available < 0 {
		available = 0
	}

	utilization := 0
	if capacity > 0 {
		utilization = int(math.Round(float64(bookedSlots) / float64(capacity) * 100))
	}

	return Availability{
		Capacity:        capacity,
		BookedSlots:     bookedSlots,
		AvailableSlots:  available,
		UtilizationRate: utilization,
	}
}

// IsFull returns true if the session has no available slots
func (a Availability) IsFull() bool {
	return a.AvailableSlots <= 0
}

// Oversubscribed returns true if the booked count exceeds capacity.
// Under correct sequencing this never happens; it signals a data-integrity
// problem worth a warning.
func (a Availability) Oversubscribed() bool {
	return a.BookedSlots > a.Capacity
}
