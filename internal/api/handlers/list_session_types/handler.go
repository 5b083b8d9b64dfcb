package list_session_types

import (
	"net/http"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
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

// Handle GET /api/v1/session-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /session-types - Failed to list session types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
