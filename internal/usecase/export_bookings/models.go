package export_bookings

import (
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// Request модель запроса на выгрузку бронирований.
// Повторяет фильтр списка бронирований.
type Request struct {
	Search          string
	Status          *domain.BookingStatus
	SessionTypeName *string
	StartDate       *time.Time
	EndDate         *time.Time
}

// Response готовая CSV-выгрузка
type Response struct {
	Filename string // Имя файла с датой выгрузки
	Content  []byte // CSV с заголовочной строкой
}
