package models

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// CreateSessionTypeRequest модель запроса на создание типа сессии
type CreateSessionTypeRequest struct {
	Name            string
	Description     string
	Capacity        int
	DurationMinutes int
	Price           *float64
	Color           *string
}

// UpdateSessionTypeRequest модель запроса на обновление типа сессии
type UpdateSessionTypeRequest struct {
	Name            string
	Description     string
	Capacity        int
	DurationMinutes int
	Price           *float64
	Color           *string
}

// SessionTypeResponse модель ответа с типом сессии
type SessionTypeResponse struct {
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

// SessionTypeListResponse список типов сессий
type SessionTypeListResponse struct {
	SessionTypes []*SessionTypeResponse
}

// FromDomainSessionType конвертирует domain модель в ответ сервиса
func FromDomainSessionType(st *domain.SessionType) *SessionTypeResponse {
	return &SessionTypeResponse{
		ID:              st.ID,
		Name:            st.Name,
		Description:     st.Description,
		Capacity:        st.Capacity,
		DurationMinutes: st.DurationMinutes,
		Price:           st.Price,
		Color:           st.Color,
		IsActive:        st.IsActive,
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
	}
}

// FromDomainSessionTypeList конвертирует список domain моделей в ответ сервиса
func FromDomainSessionTypeList(types []*domain.SessionType) *SessionTypeListResponse {
	out := make([]*SessionTypeResponse, 0, len(types))
	for _, st := range types {
		out = append(out, FromDomainSessionType(st))
	}
	return &SessionTypeListResponse{SessionTypes: out}
}
