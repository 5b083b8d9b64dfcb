package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values
const (
	DefaultCancellationReason = "Cancelled by admin"
	DefaultSessionTypeColor   = "bg-blue-100 text-blue-800"
)

// Business validation constants
const (
	MinCapacity           = 1
	MaxCapacity           = 200
	MinDurationMinutes    = 5
	MaxDurationMinutes    = 480 // 8 hours
	MaxNameLength         = 100
	MaxDescriptionLength  = 1000
	MaxCancelReasonLength = 500
	MaxFreeTextLength     = 1000
)

// ActiveBookingStatuses статусы, при которых бронирование занимает место.
// Используется при подсчете занятых слотов и проверке дубликатов.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
}
