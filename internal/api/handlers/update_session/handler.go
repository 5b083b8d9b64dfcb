package update_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	sessionsService "github.com/avlnk/StudioBookingService/internal/service/sessions"
)

const (
	msgInvalidSessionID    = "invalid session id"
	msgInvalidRequestBody  = "invalid request body"
	msgSessionNotFound     = "session not found"
	msgSessionTypeNotFound = "session type not found"
	msgSlotConflict        = "a session already exists at this date and time"
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

// Handle PUT /api/v1/sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /sessions/{id} - Invalid session id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /sessions/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessionsService.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id} - Validation failed: session_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessionsService.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id} - Session not found: session_id=%d", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessionsService.ErrSessionTypeNotFound):
			h.logger.Warn("PUT /sessions/{id} - Session type not found: session_id=%d", id)
			handlers.RespondNotFound(w, msgSessionTypeNotFound)

		case errors.Is(err, sessionsService.ErrSlotConflict):
			h.logger.Warn("PUT /sessions/{id} - Slot conflict: session_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("PUT /sessions/{id} - Failed to update session: session_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id} - Session updated: session_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
