package list_session_types

import (
	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

// SessionTypeResponse HTTP response model
type SessionTypeResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Color           string   `json:"color"`
}

// SessionTypeListResponse HTTP response со списком типов
type SessionTypeListResponse struct {
	SessionTypes []*SessionTypeResponse `json:"sessionTypes"`
	Total        int                    `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SessionTypeListResponse) *SessionTypeListResponse {
	types := make([]*SessionTypeResponse, 0, len(resp.SessionTypes))
	for _, st := range resp.SessionTypes {
		types = append(types, &SessionTypeResponse{
			ID:              st.ID,
			Name:            st.Name,
			Description:     st.Description,
			Capacity:        st.Capacity,
			DurationMinutes: st.DurationMinutes,
			Price:           st.Price,
			Color:           st.Color,
		})
	}

	return &SessionTypeListResponse{
		SessionTypes: types,
		Total:        len(types),
	}
}
