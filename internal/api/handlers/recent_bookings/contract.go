package recent_bookings

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Recent(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
