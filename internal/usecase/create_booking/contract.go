package create_booking

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Session, error)
}

// SessionTypeRepository интерфейс репозитория типов сессий
type SessionTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionType, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBySession(ctx context.Context, sessionID int64, activeOnly bool) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithSessionByID(ctx context.Context, id int64) (*domain.BookingWithSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки писем клиентам
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email string, booking *domain.BookingWithSession) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
