package create_session_type

import (
	"errors"
	"net/http"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	sessionTypesService "github.com/avlnk/StudioBookingService/internal/service/sessiontypes"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNameConflict       = "an active session type with this name already exists"
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

// Handle POST /api/v1/session-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessionTypesService.ErrInvalidInput):
			h.logger.Warn("POST /session-types - Validation failed: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessionTypesService.ErrNameConflict):
			h.logger.Warn("POST /session-types - Name conflict: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgNameConflict)

		default:
			h.logger.Error("POST /session-types - Failed to create session type: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session-types - Session type created: type_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
