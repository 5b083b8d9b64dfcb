package create_booking

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	createBooking "github.com/avlnk/StudioBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SessionID int64 `json:"sessionId"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	EmergencyContact  *string `json:"emergencyContact,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	MedicalConditions *string `json:"medicalConditions,omitempty"`
	Experience        *string `json:"experience,omitempty"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`
}

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

	Status string `json:"status"`

	SessionDate     string `json:"sessionDate"`
	SessionTime     string `json:"sessionTime"`
	SessionTypeName string `json:"sessionTypeName"`
	DurationMinutes int    `json:"durationMinutes"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SessionID:         r.SessionID,
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		EmergencyContact:  r.EmergencyContact,
		EmergencyPhone:    r.EmergencyPhone,
		MedicalConditions: r.MedicalConditions,
		Experience:        r.Experience,
		SpecialRequests:   r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		SessionID:         resp.SessionID,
		FullName:          resp.FullName,
		Email:             resp.Email,
		Phone:             resp.Phone,
		EmergencyContact:  resp.EmergencyContact,
		EmergencyPhone:    resp.EmergencyPhone,
		MedicalConditions: resp.MedicalConditions,
		Experience:        resp.Experience,
		SpecialRequests:   resp.SpecialRequests,
		Status:            resp.Status,
		SessionDate:       resp.SessionDate.Format(domain.DateFormat),
		SessionTime:       resp.SessionTime.String(),
		SessionTypeName:   resp.SessionTypeName,
		DurationMinutes:   resp.DurationMinutes,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
