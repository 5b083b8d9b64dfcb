package sessiontypes

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// SessionTypeRepository интерфейс репозитория типов сессий
type SessionTypeRepository interface {
	Create(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error)
	GetByID(ctx context.Context, id int64) (*domain.SessionType, error)
	ListActive(ctx context.Context) ([]*domain.SessionType, error)
	Update(ctx context.Context, st *domain.SessionType) error
	Deactivate(ctx context.Context, id int64) error
}

// SessionRepository интерфейс репозитория сессий
// (нужен только подсчет активных сессий типа для защиты от деактивации)
type SessionRepository interface {
	CountActiveByType(ctx context.Context, sessionTypeID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
