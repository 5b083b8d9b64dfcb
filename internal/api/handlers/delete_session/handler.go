package delete_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	sessionsService "github.com/avlnk/StudioBookingService/internal/service/sessions"
)

const (
	msgInvalidSessionID  = "invalid session id"
	msgSessionNotFound   = "session not found"
	msgHasActiveBookings = "session has active bookings and cannot be deleted"
)

type Handler struct {
	service SessionsService
	logger  Logger
}

func NewHandler(service SessionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, sessionsService.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%d", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessionsService.ErrHasActiveBookings):
			h.logger.Warn("DELETE /sessions/{id} - Session has active bookings: session_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
