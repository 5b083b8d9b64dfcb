package list_sessions

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
)

type SessionsService interface {
	List(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
