package create_session_type

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

// CreateSessionTypeRequest HTTP request model
type CreateSessionTypeRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Color           *string  `json:"color,omitempty"`
}

// SessionTypeResponse HTTP response model
type SessionTypeResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Color           string   `json:"color"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionTypeRequest) ToServiceRequest() *models.CreateSessionTypeRequest {
	return &models.CreateSessionTypeRequest{
		Name:            r.Name,
		Description:     r.Description,
		Capacity:        r.Capacity,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Color:           r.Color,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SessionTypeResponse) *SessionTypeResponse {
	return &SessionTypeResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Description:     resp.Description,
		Capacity:        resp.Capacity,
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Color:           resp.Color,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
