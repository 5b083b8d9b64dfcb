package models

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// ListSessionsRequest модель запроса списка сессий
type ListSessionsRequest struct {
	FromDate *time.Time // Начало периода включительно (опционально)
	ToDate   *time.Time // Конец периода включительно (опционально)
}

// UpdateSessionRequest модель запроса на обновление сессии
type UpdateSessionRequest struct {
	SessionTypeID int64
	Date          time.Time
	StartTime     types.TimeString
}

// SessionTypeInfo данные типа внутри ответа с сессией
type SessionTypeInfo struct {
	ID              int64
	Name            string
	Description     string
	Capacity        int
	DurationMinutes int
	Price           *float64
	Color           string
}

// SessionResponse модель ответа с сессией и производными полями доступности.
// Счетчики всегда выводятся из бронирований в момент чтения.
type SessionResponse struct {
	ID            int64
	SessionTypeID int64
	Date          time.Time
	StartTime     types.TimeString
	IsActive      bool
	SessionType   SessionTypeInfo

	BookedSlots     int
	AvailableSlots  int
	UtilizationRate int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []*SessionResponse
}

// FromDomainSessionWithType конвертирует domain модель в ответ сервиса,
// вычисляя доступность из количества активных бронирований
func FromDomainSessionWithType(swt *domain.SessionWithType) *SessionResponse {
	availability := domain.NewAvailability(swt.SessionType.Capacity, swt.BookedSlots)

	return &SessionResponse{
		ID:            swt.ID,
		SessionTypeID: swt.SessionTypeID,
		Date:          swt.Date,
		StartTime:     swt.StartTime,
		IsActive:      swt.IsActive,
		SessionType: SessionTypeInfo{
			ID:              swt.SessionType.ID,
			Name:            swt.SessionType.Name,
			Description:     swt.SessionType.Description,
			Capacity:        swt.SessionType.Capacity,
			DurationMinutes: swt.SessionType.DurationMinutes,
			Price:           swt.SessionType.Price,
			Color:           swt.SessionType.Color,
		},
		BookedSlots:     availability.BookedSlots,
		AvailableSlots:  availability.AvailableSlots,
		UtilizationRate: availability.UtilizationRate,
		CreatedAt:       swt.CreatedAt,
		UpdatedAt:       swt.UpdatedAt,
	}
}

// FromDomainSessionWithTypeList конвертирует список domain моделей в ответ сервиса
func FromDomainSessionWithTypeList(sessions []*domain.SessionWithType) *SessionListResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, swt := range sessions {
		out = append(out, FromDomainSessionWithType(swt))
	}
	return &SessionListResponse{Sessions: out}
}
