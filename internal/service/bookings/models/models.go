package models

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// ListBookingsRequest модель запроса списка бронирований
type ListBookingsRequest struct {
	Search          string
	Status          *domain.BookingStatus
	SessionTypeName *string
	StartDate       *time.Time
	EndDate         *time.Time
}

// CancelBookingRequest модель запроса на отмену бронирования
type CancelBookingRequest struct {
	Reason *string // nil или пустая строка - причина по умолчанию
}

// BookingResponse модель ответа с бронированием и данными его сессии
type BookingResponse struct {
	ID        int64
	SessionID int64

	FullName string
	Email    string
	Phone    string

	EmergencyContact  *string
	EmergencyPhone    *string
	MedicalConditions *string
	Experience        domain.ExperienceLevel
	SpecialRequests   *string

	Status             domain.BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	SessionDate      time.Time
	SessionTime      types.TimeString
	SessionTypeName  string
	DurationMinutes  int
	SessionTypePrice *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// FromDomainBookingWithSession конвертирует domain модель в ответ сервиса
func FromDomainBookingWithSession(b *domain.BookingWithSession) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		SessionID:          b.SessionID,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		EmergencyContact:   b.EmergencyContact,
		EmergencyPhone:     b.EmergencyPhone,
		MedicalConditions:  b.MedicalConditions,
		Experience:         b.Experience,
		SpecialRequests:    b.SpecialRequests,
		Status:             b.Status,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		SessionDate:        b.SessionDate,
		SessionTime:        b.SessionTime,
		SessionTypeName:    b.SessionTypeName,
		DurationMinutes:    b.DurationMinutes,
		SessionTypePrice:   b.SessionTypePrice,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingWithSessionList конвертирует список domain моделей в ответ сервиса
func FromDomainBookingWithSessionList(bookings []*domain.BookingWithSession) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBookingWithSession(b))
	}
	return &BookingListResponse{Bookings: out}
}
