package domain

import (
	"time"

	"github.com/avlnk/StudioBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ExperienceLevel represents the customer's self-reported experience
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceSome         ExperienceLevel = "some"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Booking represents a customer's reservation against one Session
type Booking struct {
	ID        int64
	SessionID int64

	FullName string
	Email    string
	Phone    string

	EmergencyContact  *string
	EmergencyPhone    *string
	MedicalConditions *string
	Experience        ExperienceLevel
	SpecialRequests   *string

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies a slot
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BookingWithSession бронирование вместе с данными сессии и её типа,
// денормализованными для списков и экспорта
type BookingWithSession struct {
	Booking
	SessionDate      time.Time
	SessionTime      types.TimeString
	SessionTypeName  string
	DurationMinutes  int
	SessionTypePrice *float64
}

// BookingsFilter фильтр для выборки бронирований.
// Все условия комбинируются через AND.
type BookingsFilter struct {
	Search          string         // Поиск без учета регистра по имени, email и телефону
	Status          *BookingStatus // Точный статус (nil - все статусы)
	SessionTypeName *string        // Точное имя типа сессии (nil - все типы)
	StartDate       *time.Time     // Начало периода по дате сессии включительно
	EndDate         *time.Time     // Конец периода по дате сессии включительно
}
