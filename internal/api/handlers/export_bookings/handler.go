package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	"github.com/avlnk/StudioBookingService/internal/domain"
	exportBookings "github.com/avlnk/StudioBookingService/internal/usecase/export_bookings"
)

const msgInvalidQuery = "invalid query parameters"

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportBookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/export - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/export - Exported %d bytes as %s", len(result.Content), result.Filename)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}

func parseRequest(r *http.Request) (*exportBookings.Request, error) {
	query := r.URL.Query()

	req := &exportBookings.Request{
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
