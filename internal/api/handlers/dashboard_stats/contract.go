package dashboard_stats

import (
	"context"

	"github.com/avlnk/StudioBookingService/internal/service/stats/models"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
