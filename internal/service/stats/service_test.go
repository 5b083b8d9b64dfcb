package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

type fakeBookingRepo struct {
	totalActive   int
	todayActive   int
	weeklyRevenue float64

	todayFrom, todayTo     time.Time
	revenueFrom, revenueTo time.Time
}

func (f *fakeBookingRepo) CountActive(_ context.Context) (int, error) {
	return f.totalActive, nil
}

func (f *fakeBookingRepo) CountActiveBetween(_ context.Context, from, to time.Time) (int, error) {
	f.todayFrom, f.todayTo = from, to
	return f.todayActive, nil
}

func (f *fakeBookingRepo) SumConfirmedRevenueBetween(_ context.Context, from, to time.Time) (float64, error) {
	f.revenueFrom, f.revenueTo = from, to
	return f.weeklyRevenue, nil
}

type fakeSessionRepo struct {
	sessions   []*domain.SessionWithType
	lastFilter domain.SessionsFilter
}

func (f *fakeSessionRepo) ListWithFilter(_ context.Context, filter domain.SessionsFilter) ([]*domain.SessionWithType, error) {
	f.lastFilter = filter
	return f.sessions, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sessionWithCapacity(capacity, booked int) *domain.SessionWithType {
	return &domain.SessionWithType{
		SessionType: domain.SessionType{Capacity: capacity},
		BookedSlots: booked,
	}
}

func TestDashboard(t *testing.T) {
	bookingRepo := &fakeBookingRepo{totalActive: 42, todayActive: 5, weeklyRevenue: 750000}
	sessionRepo := &fakeSessionRepo{sessions: []*domain.SessionWithType{
		sessionWithCapacity(10, 4),
		sessionWithCapacity(10, 9),
	}}
	svc := NewService(bookingRepo, sessionRepo, nopLogger{})
	// Среда 5 июня 2024
	svc.now = func() time.Time { return time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC) }

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, resp.TotalBookings)
	assert.Equal(t, 5, resp.TodayBookings)
	assert.Equal(t, 750000.0, resp.WeeklyRevenue)
	// 13 занятых мест из 20 суммарной вместимости
	assert.Equal(t, 65, resp.AverageCapacity)

	today := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, bookingRepo.todayFrom)
	assert.Equal(t, today, bookingRepo.todayTo)

	// Неделя начинается с понедельника
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), bookingRepo.revenueFrom)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), bookingRepo.revenueTo)

	require.NotNil(t, sessionRepo.lastFilter.FromDate)
	assert.Equal(t, today, *sessionRepo.lastFilter.FromDate)
	assert.True(t, sessionRepo.lastFilter.ActiveOnly)
}

func TestDashboard_NoSessionsToday(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSessionRepo{}, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.AverageCapacity)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			day:  time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps to previous monday",
			day:  time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midweek",
			day:  time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.day))
		})
	}
}

func TestAverageUtilization(t *testing.T) {
	tests := []struct {
		name     string
		sessions []*domain.SessionWithType
		want     int
	}{
		{name: "empty", sessions: nil, want: 0},
		{
			name:     "rounding",
			sessions: []*domain.SessionWithType{sessionWithCapacity(12, 4)},
			want:     33,
		},
		{
			name: "aggregate over sessions",
			sessions: []*domain.SessionWithType{
				sessionWithCapacity(10, 10),
				sessionWithCapacity(10, 0),
			},
			want: 50,
		},
		{
			name:     "zero capacity",
			sessions: []*domain.SessionWithType{sessionWithCapacity(0, 0)},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageUtilization(tt.sessions))
		})
	}
}
