package create_booking

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SessionID int64 // ID сессии

	FullName string // Имя клиента
	Email    string // Email клиента (ключ дедупликации в рамках сессии)
	Phone    string // Телефон клиента

	EmergencyContact  *string // Контакт для экстренной связи (опционально)
	EmergencyPhone    *string // Телефон для экстренной связи (опционально)
	MedicalConditions *string // Медицинские противопоказания (опционально)
	Experience        *string // Уровень подготовки (опционально, по умолчанию beginner)
	SpecialRequests   *string // Особые пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	SessionID int64

	FullName string
	Email    string
	Phone    string

	EmergencyContact  *string
	EmergencyPhone    *string
	MedicalConditions *string
	Experience        string
	SpecialRequests   *string

	Status string

	// Денормализованные данные сессии
	SessionDate     time.Time
	SessionTime     types.TimeString
	SessionTypeName string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.BookingWithSession) *Response {
	return &Response{
		ID:                b.ID,
		SessionID:         b.SessionID,
		FullName:          b.FullName,
		Email:             b.Email,
		Phone:             b.Phone,
		EmergencyContact:  b.EmergencyContact,
		EmergencyPhone:    b.EmergencyPhone,
		MedicalConditions: b.MedicalConditions,
		Experience:        string(b.Experience),
		SpecialRequests:   b.SpecialRequests,
		Status:            string(b.Status),
		SessionDate:       b.SessionDate,
		SessionTime:       b.SessionTime,
		SessionTypeName:   b.SessionTypeName,
		DurationMinutes:   b.DurationMinutes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
