package update_session

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
)

type SessionsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
