package list_session_types

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

type SessionTypesService interface {
	List(ctx context.Context) (*models.SessionTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
