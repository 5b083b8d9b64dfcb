package create_session_type

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

type SessionTypesService interface {
	Create(ctx context.Context, req *models.CreateSessionTypeRequest) (*models.SessionTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
