package cancel_booking

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"sessionId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	SessionDate     string `json:"sessionDate"`
	SessionTime     string `json:"sessionTime"`
	SessionTypeName string `json:"sessionTypeName"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 resp.ID,
		SessionID:          resp.SessionID,
		FullName:           resp.FullName,
		Email:              resp.Email,
		Phone:              resp.Phone,
		Status:             string(resp.Status),
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		SessionDate:        resp.SessionDate.Format(domain.DateFormat),
		SessionTime:        resp.SessionTime.String(),
		SessionTypeName:    resp.SessionTypeName,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
