package stats

import (
	"context"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActive(ctx context.Context) (int, error)
	CountActiveBetween(ctx context.Context, from, to time.Time) (int, error)
	SumConfirmedRevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	ListWithFilter(ctx context.Context, filter domain.SessionsFilter) ([]*domain.SessionWithType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
