package domain

import "time"

// SessionType represents a bookable class template
type SessionType struct {
	ID              int64
	Name            string
	Description     string
	Capacity        int
	DurationMinutes int
	Price           *float64
	Color           string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPrice returns true if the session type has a price set
func (t *SessionType) HasPrice() bool {
	return t.Price != nil
}
