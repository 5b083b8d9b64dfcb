package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
	bookingRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/booking"
	"github.com/avlnk/StudioBookingService/internal/service/bookings/models"
	"github.com/avlnk/StudioBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetWithSessionByID(ctx context.Context, id int64) (*domain.BookingWithSession, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.BookingWithSession{
		Booking:         *b,
		SessionDate:     time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		SessionTime:     "09:00",
		SessionTypeName: "Mat Class",
		DurationMinutes: 55,
	}, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.BookingWithSession, error) {
	var out []*domain.BookingWithSession
	for _, b := range f.bookings {
		out = append(out, &domain.BookingWithSession{Booking: *b})
	}
	return out, nil
}

func (f *fakeBookingRepo) Recent(_ context.Context, limit uint64) ([]*domain.BookingWithSession, error) {
	var out []*domain.BookingWithSession
	for _, b := range f.bookings {
		if !b.IsActive() {
			continue
		}
		if uint64(len(out)) >= limit {
			break
		}
		out = append(out, &domain.BookingWithSession{Booking: *b})
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok || b.IsCancelled() {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	cancelled []int64
	done      chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 8)}
}

func (n *fakeNotifier) SendBookingCancellation(_ context.Context, _ string, b *domain.BookingWithSession) error {
	n.mu.Lock()
	n.cancelled = append(n.cancelled, b.ID)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *fakeNotifier) waitForEmail(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancellation email was not sent")
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Status:   domain.BookingStatusPending,
	}
}

func TestConfirm(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Status)
}

func TestConfirm_AlreadyConfirmedIsNoOp(t *testing.T) {
	b := pendingBooking(1)
	b.Status = domain.BookingStatusConfirmed
	repo := newFakeBookingRepo(b)
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Status)
}

func TestConfirm_CancelledIsRejected(t *testing.T) {
	b := pendingBooking(1)
	b.Status = domain.BookingStatusCancelled
	repo := newFakeBookingRepo(b)
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	// Отмененное бронирование уже не занимает место, его подтверждение
	// могло бы переполнить сессию
	_, err := svc.Confirm(context.Background(), 1)

	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.Equal(t, domain.BookingStatusCancelled, repo.bookings[1].Status)
}

func TestConfirm_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), newFakeNotifier(), nopLogger{})

	_, err := svc.Confirm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr("schedule change"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "schedule change", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)

	notifier.waitForEmail(t)
	assert.Equal(t, []int64{1}, notifier.cancelled)
}

func TestCancel_DefaultReason(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})

	require.NoError(t, err)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, domain.DefaultCancellationReason, *resp.CancellationReason)
	notifier.waitForEmail(t)
}

func TestCancel_IsIdempotent(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier, nopLogger{})

	first, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	require.NoError(t, err)
	notifier.waitForEmail(t)

	second, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr("another reason"),
	})
	require.NoError(t, err)

	// Исходные причина и время отмены сохраняются, повторное письмо не уходит
	assert.Equal(t, *first.CancellationReason, *second.CancellationReason)
	assert.Equal(t, *first.CancelledAt, *second.CancelledAt)
	notifier.mu.Lock()
	assert.Len(t, notifier.cancelled, 1)
	notifier.mu.Unlock()
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), newFakeNotifier(), nopLogger{})

	_, err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), newFakeNotifier(), nopLogger{})

	bad := domain.BookingStatus("paused")
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RejectsInvertedDateRange(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), newFakeNotifier(), nopLogger{})

	start := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking(1))
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Mat Class", resp.SessionTypeName)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
