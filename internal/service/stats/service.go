package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/internal/service/stats/models"
)

// Service сервис сводной статистики для панели администратора
type Service struct {
	bookingRepo BookingRepository
	sessionRepo SessionRepository
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookingRepo BookingRepository,
	sessionRepo SessionRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Dashboard собирает показатели панели администратора.
// Все счетчики выводятся из текущего состояния бронирований на момент запроса.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardStatsResponse, error) {
	today := truncateToDay(s.now())
	weekStart := startOfWeek(today)
	weekEnd := weekStart.AddDate(0, 0, 6)

	totalBookings, err := s.bookingRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - failed to count bookings: %v", ErrInternal, err)
	}

	todayBookings, err := s.bookingRepo.CountActiveBetween(ctx, today, today)
	if err != nil {
		s.logger.Error("Dashboard: failed to count today bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - failed to count today bookings: %v", ErrInternal, err)
	}

	weeklyRevenue, err := s.bookingRepo.SumConfirmedRevenueBetween(ctx, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("Dashboard: failed to sum weekly revenue: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - failed to sum weekly revenue: %v", ErrInternal, err)
	}

	todaySessions, err := s.sessionRepo.ListWithFilter(ctx, domain.SessionsFilter{
		FromDate:   &today,
		ToDate:     &today,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("Dashboard: failed to list today sessions: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - failed to list today sessions: %v", ErrInternal, err)
	}

	return &models.DashboardStatsResponse{
		TotalBookings:   totalBookings,
		TodayBookings:   todayBookings,
		WeeklyRevenue:   weeklyRevenue,
		AverageCapacity: averageUtilization(todaySessions),
	}, nil
}

// averageUtilization совокупная загрузка сессий в процентах:
// отношение всех занятых мест ко всей вместимости, 0 для пустого списка
func averageUtilization(sessions []*domain.SessionWithType) int {
	var totalBooked, totalCapacity int
	for _, swt := range sessions {
		totalBooked += swt.BookedSlots
		totalCapacity += swt.SessionType.Capacity
	}
	if totalCapacity == 0 {
		return 0
	}

	return int(math.Round(float64(totalBooked) / float64(totalCapacity) * 100))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek понедельник недели, содержащей день d
func startOfWeek(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
