package dashboard_stats

import (
	"net/http"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
	"github.com/avlnk/StudioBookingService/internal/service/stats/models"
)

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	TotalBookings   int     `json:"totalBookings"`
	TodayBookings   int     `json:"todayBookings"`
	WeeklyRevenue   float64 `json:"weeklyRevenue"`
	AverageCapacity int     `json:"averageCapacity"`
}

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.DashboardStatsResponse) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalBookings:   resp.TotalBookings,
		TodayBookings:   resp.TodayBookings,
		WeeklyRevenue:   resp.WeeklyRevenue,
		AverageCapacity: resp.AverageCapacity,
	}
}
