package create_booking

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
	bookingRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/booking"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	"github.com/avlnk/StudioBookingService/pkg/ptr"
)

// fakeStore хранит сессии и бронирования в памяти и имитирует
// сериализацию транзакций глобальным мьютексом.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	types    map[int64]*domain.SessionType
	bookings []*domain.Booking
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[int64]*domain.Session),
		types:    make(map[int64]*domain.SessionType),
	}
}

func (s *fakeStore) GetForUpdate(_ context.Context, id int64) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.SessionType, error) {
	st, ok := s.types[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return st, nil
}

func (s *fakeStore) ListBySession(_ context.Context, sessionID int64, activeOnly bool) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.SessionID != sessionID {
			continue
		}
		if activeOnly && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	for _, existing := range s.bookings {
		if existing.SessionID == b.SessionID && existing.IsActive() &&
			strings.EqualFold(existing.Email, b.Email) {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}
	s.nextID++
	created := *b
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

func (s *fakeStore) GetWithSessionByID(_ context.Context, id int64) (*domain.BookingWithSession, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			sess := s.sessions[b.SessionID]
			st := s.types[sess.SessionTypeID]
			return &domain.BookingWithSession{
				Booking:          *b,
				SessionDate:      sess.Date,
				SessionTime:      sess.StartTime,
				SessionTypeName:  st.Name,
				DurationMinutes:  st.DurationMinutes,
				SessionTypePrice: st.Price,
			}, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

// fakeTxManager последовательно выполняет транзакции под мьютексом хранилища
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []int64
	failAll bool
}

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, _ string, b *domain.BookingWithSession) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failAll {
		return assert.AnError
	}
	n.sent = append(n.sent, b.ID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(capacity int) (*fakeStore, *fakeNotifier, *UseCase) {
	store := newFakeStore()
	store.types[1] = &domain.SessionType{
		ID: 1, Name: "Reformer Class", Capacity: capacity,
		DurationMinutes: 55, Price: ptr.Ptr(250000.0), IsActive: true,
	}
	store.sessions[10] = &domain.Session{
		ID: 10, SessionTypeID: 1,
		Date:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		IsActive:  true,
	}

	notifier := &fakeNotifier{}
	uc := NewUseCase(store, store, store, &fakeTxManager{store: store}, notifier, nopLogger{})
	return store, notifier, uc
}

func validRequest() *Request {
	return &Request{
		SessionID: 10,
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+62 812 0000 0000",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	store, _, uc := setup(5)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, string(domain.ExperienceBeginner), resp.Experience)
	assert.Equal(t, "Reformer Class", resp.SessionTypeName)
	require.Len(t, store.bookings, 1)
	assert.Equal(t, domain.BookingStatusPending, store.bookings[0].Status)
}

func TestExecute_NormalizesEmail(t *testing.T) {
	store, _, uc := setup(5)

	req := validRequest()
	req.Email = "  Jane@Example.COM "

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", store.bookings[0].Email)
}

func TestExecute_SessionNotFound(t *testing.T) {
	_, _, uc := setup(5)

	req := validRequest()
	req.SessionID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_InactiveSession(t *testing.T) {
	store, _, uc := setup(5)
	store.sessions[10].IsActive = false

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_SessionFull(t *testing.T) {
	_, _, uc := setup(1)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "other@example.com"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSessionFull)
}

func TestExecute_FullSessionReportedBeforeDuplicate(t *testing.T) {
	_, _, uc := setup(1)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повтор того же email на заполненной сессии: переполнение важнее дубликата
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSessionFull)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	store, _, uc := setup(1)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	store.bookings[0].Status = domain.BookingStatusCancelled

	req := validRequest()
	req.Email = "other@example.com"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DuplicateEmail(t *testing.T) {
	_, _, uc := setup(5)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Та же сессия, тот же email в другом регистре
	req := validRequest()
	req.Email = "JANE@EXAMPLE.COM"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestExecute_ExperienceLevels(t *testing.T) {
	_, _, uc := setup(10)

	req := validRequest()
	req.Experience = ptr.Ptr("Advanced")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ExperienceAdvanced), resp.Experience)

	req = validRequest()
	req.Email = "second@example.com"
	req.Experience = ptr.Ptr("made-up")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Validation(t *testing.T) {
	_, _, uc := setup(5)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "no session", mutate: func(r *Request) { r.SessionID = 0 }},
		{name: "no name", mutate: func(r *Request) { r.FullName = "  " }},
		{name: "no email", mutate: func(r *Request) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "no phone", mutate: func(r *Request) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	_, notifier, uc := setup(5)
	notifier.failAll = true

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_ConcurrentCreationsNeverExceedCapacity(t *testing.T) {
	const capacity = 3
	const attempts = 20

	store, _, uc := setup(capacity)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.Email = string(rune('a'+i%26)) + "@example.com"
			if i >= 26 {
				req.Email = "x" + req.Email
			}
			_, _ = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	active := 0
	for _, b := range store.bookings {
		if b.IsActive() {
			active++
		}
	}
	assert.LessOrEqual(t, active, capacity)
}
