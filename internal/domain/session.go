package domain

import (
	"time"

	"github.com/avlnk/StudioBookingService/pkg/types"
)

// Session represents a scheduled occurrence of a SessionType.
// The tuple (session type, date, start time) is unique among active sessions.
type Session struct {
	ID            int64
	SessionTypeID int64
	Date          time.Time
	StartTime     types.TimeString
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SessionWithType сессия вместе с её типом и количеством активных
// бронирований (подсчитанным в момент чтения)
type SessionWithType struct {
	Session
	SessionType SessionType
	BookedSlots int
}

// SessionsFilter фильтр для выборки сессий
type SessionsFilter struct {
	FromDate   *time.Time // Начало периода включительно (опционально)
	ToDate     *time.Time // Конец периода включительно (опционально)
	ActiveOnly bool       // Только активные сессии
}
