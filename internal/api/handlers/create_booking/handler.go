package create_booking

import (
	"errors"
	"net/http"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	createBooking "github.com/avlnk/StudioBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgSessionFull        = "session is fully booked"
	msgDuplicateBooking   = "an active booking with this email already exists for the session"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: session_id=%d, error=%v", req.SessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings - Session not found: session_id=%d", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrSessionFull):
			h.logger.Warn("POST /bookings - Session full: session_id=%d", req.SessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionFull)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: session_id=%d, email=%s", req.SessionID, req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session_id=%d, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, session_id=%d",
		result.ID, result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
