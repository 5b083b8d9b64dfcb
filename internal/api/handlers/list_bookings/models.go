package list_bookings

import (
	"fmt"
	"net/url"
	"strings"
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

	Experience string `json:"experience"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	SessionDate      string   `json:"sessionDate"`
	SessionTime      string   `json:"sessionTime"`
	SessionTypeName  string   `json:"sessionTypeName"`
	DurationMinutes  int      `json:"durationMinutes"`
	SessionTypePrice *float64 `json:"sessionTypePrice,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// BookingListResponse HTTP response со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ParseListRequest разбирает query-параметры фильтра списка
func ParseListRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Search: strings.TrimSpace(query.Get("search")),
	}

	// Литерал "all" означает отсутствие фильтра
	if raw := strings.ToLower(strings.TrimSpace(query.Get("status"))); raw != "" && raw != "all" {
		status := domain.BookingStatus(raw)
		req.Status = &status
	}

	if raw := strings.TrimSpace(query.Get("sessionType")); raw != "" && !strings.EqualFold(raw, "all") {
		req.SessionTypeName = &raw
	}

	if raw := strings.TrimSpace(query.Get("startDate")); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if raw := strings.TrimSpace(query.Get("endDate")); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &endDate
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]*BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		var cancelledAt *string
		if b.CancelledAt != nil {
			formatted := b.CancelledAt.Format(time.RFC3339)
			cancelledAt = &formatted
		}

		bookings = append(bookings, &BookingResponse{
			ID:                 b.ID,
			SessionID:          b.SessionID,
			FullName:           b.FullName,
			Email:              b.Email,
			Phone:              b.Phone,
			Experience:         string(b.Experience),
			Status:             string(b.Status),
			CancellationReason: b.CancellationReason,
			CancelledAt:        cancelledAt,
			SessionDate:        b.SessionDate.Format(domain.DateFormat),
			SessionTime:        b.SessionTime.String(),
			SessionTypeName:    b.SessionTypeName,
			DurationMinutes:    b.DurationMinutes,
			SessionTypePrice:   b.SessionTypePrice,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
