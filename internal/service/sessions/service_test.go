package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

type fakeSessionRepo struct {
	sessions map[int64]*domain.SessionWithType
	occupied map[string]int64 // "type|date|time" -> session id
}

func sessionKey(typeID int64, date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", typeID, date.Format(domain.DateFormat), startTime)
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.SessionWithType, error) {
	swt, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *swt
	return &copied, nil
}

func (f *fakeSessionRepo) ListWithFilter(_ context.Context, filter domain.SessionsFilter) ([]*domain.SessionWithType, error) {
	var out []*domain.SessionWithType
	for _, swt := range f.sessions {
		if filter.ActiveOnly && !swt.IsActive {
			continue
		}
		out = append(out, swt)
	}
	return out, nil
}

func (f *fakeSessionRepo) ExistsAtSlot(_ context.Context, typeID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error) {
	id, ok := f.occupied[sessionKey(typeID, date, startTime)]
	if !ok {
		return false, nil
	}
	if excludeID != nil && id == *excludeID {
		return false, nil
	}
	return true, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *domain.Session) error {
	swt, ok := f.sessions[s.ID]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	swt.Session = *s
	swt.IsActive = true
	return nil
}

func (f *fakeSessionRepo) Deactivate(_ context.Context, id int64) error {
	swt, ok := f.sessions[id]
	if !ok || !swt.IsActive {
		return sessionRepo.ErrSessionNotFound
	}
	swt.IsActive = false
	return nil
}

type fakeSessionTypeRepo struct {
	types map[int64]*domain.SessionType
}

func (f *fakeSessionTypeRepo) GetByID(_ context.Context, id int64) (*domain.SessionType, error) {
	st, ok := f.types[id]
	if !ok {
		return nil, sessionTypeRepo.ErrSessionTypeNotFound
	}
	return st, nil
}

type fakeBookingCounter struct {
	counts map[int64]int
}

func (f *fakeBookingCounter) CountActiveBySession(_ context.Context, sessionID int64) (int, error) {
	return f.counts[sessionID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func fixture() (*fakeSessionRepo, *fakeSessionTypeRepo, *fakeBookingCounter, *Service) {
	matType := &domain.SessionType{ID: 1, Name: "Mat Class", Capacity: 10, IsActive: true}

	sessions := &fakeSessionRepo{
		sessions: map[int64]*domain.SessionWithType{
			10: {
				Session: domain.Session{
					ID: 10, SessionTypeID: 1, Date: date(3), StartTime: "09:00", IsActive: true,
				},
				SessionType: *matType,
				BookedSlots: 4,
			},
		},
		occupied: map[string]int64{
			sessionKey(1, date(3), "09:00"): 10,
		},
	}
	typesRepo := &fakeSessionTypeRepo{types: map[int64]*domain.SessionType{1: matType}}
	bookings := &fakeBookingCounter{counts: map[int64]int{}}

	svc := NewService(sessions, typesRepo, bookings, nopLogger{})
	return sessions, typesRepo, bookings, svc
}

func TestList_DerivesAvailability(t *testing.T) {
	_, _, _, svc := fixture()

	resp, err := svc.List(context.Background(), &models.ListSessionsRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	s := resp.Sessions[0]
	assert.Equal(t, 4, s.BookedSlots)
	assert.Equal(t, 6, s.AvailableSlots)
	assert.Equal(t, 40, s.UtilizationRate)
}

func TestList_RejectsInvertedRange(t *testing.T) {
	_, _, _, svc := fixture()

	from := date(9)
	to := date(3)
	_, err := svc.List(context.Background(), &models.ListSessionsRequest{FromDate: &from, ToDate: &to})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet(t *testing.T) {
	_, _, _, svc := fixture()

	resp, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Mat Class", resp.SessionType.Name)

	_, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdate_MovesSession(t *testing.T) {
	sessions, _, _, svc := fixture()

	resp, err := svc.Update(context.Background(), 10, &models.UpdateSessionRequest{
		SessionTypeID: 1,
		Date:          date(4),
		StartTime:     "18:30",
	})

	require.NoError(t, err)
	assert.Equal(t, date(4), resp.Date)
	assert.Equal(t, types.TimeString("18:30"), resp.StartTime)
	assert.Equal(t, date(4), sessions.sessions[10].Date)
}

func TestUpdate_SameSlotDoesNotConflictWithItself(t *testing.T) {
	_, _, _, svc := fixture()

	// Слот занят самой обновляемой сессией
	_, err := svc.Update(context.Background(), 10, &models.UpdateSessionRequest{
		SessionTypeID: 1,
		Date:          date(3),
		StartTime:     "09:00",
	})

	assert.NoError(t, err)
}

func TestUpdate_SlotConflict(t *testing.T) {
	sessions, _, _, svc := fixture()
	sessions.occupied[sessionKey(1, date(5), "07:00")] = 77

	_, err := svc.Update(context.Background(), 10, &models.UpdateSessionRequest{
		SessionTypeID: 1,
		Date:          date(5),
		StartTime:     "07:00",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUpdate_InactiveType(t *testing.T) {
	_, typesRepo, _, svc := fixture()
	typesRepo.types[1].IsActive = false

	_, err := svc.Update(context.Background(), 10, &models.UpdateSessionRequest{
		SessionTypeID: 1,
		Date:          date(4),
		StartTime:     "10:00",
	})

	assert.ErrorIs(t, err, ErrSessionTypeNotFound)
}

func TestDeactivate(t *testing.T) {
	sessions, _, _, svc := fixture()

	require.NoError(t, svc.Deactivate(context.Background(), 10))
	assert.False(t, sessions.sessions[10].IsActive)
}

func TestDeactivate_BlockedByActiveBookings(t *testing.T) {
	sessions, _, bookings, svc := fixture()
	bookings.counts[10] = 2

	err := svc.Deactivate(context.Background(), 10)

	assert.ErrorIs(t, err, ErrHasActiveBookings)
	assert.True(t, sessions.sessions[10].IsActive)
}

func TestDeactivate_NotFound(t *testing.T) {
	_, _, _, svc := fixture()

	err := svc.Deactivate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
