package delete_session_type

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	sessionTypesService "github.com/avlnk/StudioBookingService/internal/service/sessiontypes"
)

const (
	msgInvalidTypeID       = "invalid session type id"
	msgSessionTypeNotFound = "session type not found"
	msgHasActiveSessions   = "session type has active sessions and cannot be deleted"
)

type Handler struct {
	service SessionTypesService
	logger  Logger
}

func NewHandler(service SessionTypesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/session-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /session-types/{id} - Invalid session type id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, sessionTypesService.ErrSessionTypeNotFound):
			h.logger.Warn("DELETE /session-types/{id} - Session type not found: type_id=%d", id)
			handlers.RespondNotFound(w, msgSessionTypeNotFound)

		case errors.Is(err, sessionTypesService.ErrHasActiveSessions):
			h.logger.Warn("DELETE /session-types/{id} - Session type has active sessions: type_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveSessions)

		default:
			h.logger.Error("DELETE /session-types/{id} - Failed to delete session type: type_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /session-types/{id} - Session type deleted: type_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
