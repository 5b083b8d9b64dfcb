package create_sessions

import (
	"errors"
	"net/http"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	generateSessions "github.com/avlnk/StudioBookingService/internal/usecase/generate_sessions"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgSessionTypeNotFound = "session type not found"
	msgNothingToCreate     = "schedule does not match any dates"
)

type Handler struct {
	useCase GenerateSessionsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSessionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, generateSessions.ErrNothingToCreate):
			h.logger.Warn("POST /sessions - Nothing to create: type_id=%d", req.SessionTypeID)
			handlers.RespondBadRequest(w, msgNothingToCreate)

		case errors.Is(err, generateSessions.ErrSessionTypeNotFound):
			h.logger.Warn("POST /sessions - Session type not found: type_id=%d", req.SessionTypeID)
			handlers.RespondNotFound(w, msgSessionTypeNotFound)

		default:
			h.logger.Error("POST /sessions - Failed to create sessions: type_id=%d, error=%v", req.SessionTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Created %d sessions, %d failed: type_id=%d",
		len(result.Successful), len(result.Failed), req.SessionTypeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
