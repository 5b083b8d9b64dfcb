package update_session

import (
	"fmt"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// UpdateSessionRequest HTTP request model
type UpdateSessionRequest struct {
	SessionTypeID int64  `json:"sessionTypeId"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "09:00"
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID            int64  `json:"id"`
	SessionTypeID int64  `json:"sessionTypeId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`

	SessionTypeName string `json:"sessionTypeName"`
	Capacity        int    `json:"capacity"`

	BookedSlots     int `json:"bookedSlots"`
	AvailableSlots  int `json:"availableSlots"`
	UtilizationRate int `json:"utilizationRate"`

	UpdatedAt string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSessionRequest) ToServiceRequest() (*models.UpdateSessionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %v", err)
	}

	return &models.UpdateSessionRequest{
		SessionTypeID: r.SessionTypeID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SessionResponse) *SessionResponse {
	return &SessionResponse{
		ID:              resp.ID,
		SessionTypeID:   resp.SessionTypeID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		SessionTypeName: resp.SessionType.Name,
		Capacity:        resp.SessionType.Capacity,
		BookedSlots:     resp.BookedSlots,
		AvailableSlots:  resp.AvailableSlots,
		UtilizationRate: resp.UtilizationRate,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
