package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAvailability(t *testing.T) {
	tests := []struct {
		name          string
		capacity      int
		bookings      []*Booking
		wantBooked    int
		wantAvailable int
		wantRate      int
	}{
		{
			name:          "no bookings",
			capacity:      10,
			bookings:      nil,
			wantBooked:    0,
			wantAvailable: 10,
			wantRate:      0,
		},
		{
			name:     "cancelled bookings do not count",
			capacity: 10,
			bookings: []*Booking{
				{Status: BookingStatusPending},
				{Status: BookingStatusConfirmed},
				{Status: BookingStatusCancelled},
				{Status: BookingStatusCancelled},
			},
			wantBooked:    2,
			wantAvailable: 8,
			wantRate:      20,
		},
		{
			name:     "exactly full",
			capacity: 3,
			bookings: []*Booking{
				{Status: BookingStatusConfirmed},
				{Status: BookingStatusConfirmed},
				{Status: BookingStatusPending},
			},
			wantBooked:    3,
			wantAvailable: 0,
			wantRate:      100,
		},
		{
			name:     "rounded utilization",
			capacity: 3,
			bookings: []*Booking{
				{Status: BookingStatusConfirmed},
			},
			wantBooked:    1,
			wantAvailable: 2,
			wantRate:      33,
		},
		{
			name:          "zero capacity",
			capacity:      0,
			bookings:      []*Booking{{Status: BookingStatusConfirmed}},
			wantBooked:    1,
			wantAvailable: 0,
			wantRate:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAvailability(tt.capacity, tt.bookings)

			assert.Equal(t, tt.wantBooked, got.BookedSlots)
			assert.Equal(t, tt.wantAvailable, got.AvailableSlots)
			assert.Equal(t, tt.wantRate, got.UtilizationRate)
		})
	}
}

func TestNewAvailability_ClampsAtZero(t *testing.T) {
	// Занято больше, чем вместимость: доступные места не уходят в минус,
	// а перебронирование остается наблюдаемым.
	got := NewAvailability(5, 7)

	assert.Equal(t, 0, got.AvailableSlots)
	assert.Equal(t, 140, got.UtilizationRate)
	assert.True(t, got.IsFull())
	assert.True(t, got.Oversubscribed())
}

func TestAvailability_IsFull(t *testing.T) {
	assert.False(t, NewAvailability(5, 4).IsFull())
	assert.True(t, NewAvailability(5, 5).IsFull())
	assert.False(t, NewAvailability(5, 4).Oversubscribed())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending}).IsActive())
	assert.True(t, (&Booking{Status: BookingStatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).IsActive())
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).IsCancelled())
}
