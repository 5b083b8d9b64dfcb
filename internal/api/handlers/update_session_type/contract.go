package update_session_type

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

type SessionTypesService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSessionTypeRequest) (*models.SessionTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
