package bookings

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithSessionByID(ctx context.Context, id int64) (*domain.BookingWithSession, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithSession, error)
	Recent(ctx context.Context, limit uint64) ([]*domain.BookingWithSession, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Notifier интерфейс отправки писем клиентам
type Notifier interface {
	SendBookingCancellation(ctx context.Context, email string, booking *domain.BookingWithSession) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
