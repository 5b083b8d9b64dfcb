package update_session_type

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
	msgInvalidRequestBody  = "invalid request body"
	msgSessionTypeNotFound = "session type not found"
	msgNameConflict        = "an active session type with this name already exists"
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

// Handle PUT /api/v1/session-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /session-types/{id} - Invalid session type id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	var req UpdateSessionTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessionTypesService.ErrInvalidInput):
			h.logger.Warn("PUT /session-types/{id} - Validation failed: type_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessionTypesService.ErrSessionTypeNotFound):
			h.logger.Warn("PUT /session-types/{id} - Session type not found: type_id=%d", id)
			handlers.RespondNotFound(w, msgSessionTypeNotFound)

		case errors.Is(err, sessionTypesService.ErrNameConflict):
			h.logger.Warn("PUT /session-types/{id} - Name conflict: type_id=%d, name=%q", id, req.Name)
			handlers.RespondError(w, http.StatusConflict, msgNameConflict)

		default:
			h.logger.Error("PUT /session-types/{id} - Failed to update session type: type_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /session-types/{id} - Session type updated: type_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
