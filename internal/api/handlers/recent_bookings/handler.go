package recent_bookings

import (
	"net/http"
	"time"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/internal/service/bookings/models"
)

// RecentBookingResponse HTTP response model
type RecentBookingResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	SessionTypeName string `json:"sessionTypeName"`
	SessionDate     string `json:"sessionDate"`
	SessionTime     string `json:"sessionTime"`
	CreatedAt       string `json:"createdAt"`
}

// RecentBookingsResponse HTTP response со списком последних бронирований
type RecentBookingsResponse struct {
	Bookings []*RecentBookingResponse `json:"bookings"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/recent-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Recent(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/recent-bookings - Failed to list recent bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingListResponse) *RecentBookingsResponse {
	bookings := make([]*RecentBookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, &RecentBookingResponse{
			ID:              b.ID,
			FullName:        b.FullName,
			Email:           b.Email,
			Status:          string(b.Status),
			SessionTypeName: b.SessionTypeName,
			SessionDate:     b.SessionDate.Format(domain.DateFormat),
			SessionTime:     b.SessionTime.String(),
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &RecentBookingsResponse{Bookings: bookings}
}
