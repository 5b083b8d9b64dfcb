package get_booking

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

	EmergencyContact  *string `json:"emergencyContact,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	MedicalConditions *string `json:"medicalConditions,omitempty"`
	Experience        string  `json:"experience"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	SessionDate      string   `json:"sessionDate"`
	SessionTime      string   `json:"sessionTime"`
	SessionTypeName  string   `json:"sessionTypeName"`
	DurationMinutes  int      `json:"durationMinutes"`
	SessionTypePrice *float64 `json:"sessionTypePrice,omitempty"`

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
		EmergencyContact:   resp.EmergencyContact,
		EmergencyPhone:     resp.EmergencyPhone,
		MedicalConditions:  resp.MedicalConditions,
		Experience:         string(resp.Experience),
		SpecialRequests:    resp.SpecialRequests,
		Status:             string(resp.Status),
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		SessionDate:        resp.SessionDate.Format(domain.DateFormat),
		SessionTime:        resp.SessionTime.String(),
		SessionTypeName:    resp.SessionTypeName,
		DurationMinutes:    resp.DurationMinutes,
		SessionTypePrice:   resp.SessionTypePrice,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
