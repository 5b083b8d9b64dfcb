package sessions

import (
	"context"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error)
	ListWithFilter(ctx context.Context, filter domain.SessionsFilter) ([]*domain.SessionWithType, error)
	ExistsAtSlot(ctx context.Context, sessionTypeID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error)
	Update(ctx context.Context, s *domain.Session) error
	Deactivate(ctx context.Context, id int64) error
}

// SessionTypeRepository интерфейс репозитория типов сессий
type SessionTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionType, error)
}

// BookingRepository интерфейс репозитория бронирований
// (нужен только подсчет активных бронирований для защиты от деактивации)
type BookingRepository interface {
	CountActiveBySession(ctx context.Context, sessionID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
