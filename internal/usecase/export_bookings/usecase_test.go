package export_bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/ptr"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.BookingWithSession
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithSession, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.BookingWithSession {
	return &domain.BookingWithSession{
		Booking: domain.Booking{
			ID:                1,
			SessionID:         10,
			FullName:          "Smith, Jane",
			Email:             "jane@example.com",
			Phone:             "+79990001122",
			MedicalConditions: ptr.Ptr("knee injury"),
			Experience:        domain.ExperienceIntermediate,
			Status:            domain.BookingStatusConfirmed,
			CreatedAt:         time.Date(2024, 5, 28, 12, 0, 0, 0, time.UTC),
		},
		SessionDate:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		SessionTime:      types.TimeString("10:00"),
		SessionTypeName:  "Reformer Class",
		DurationMinutes:  55,
		SessionTypePrice: ptr.Ptr(250000.0),
	}
}

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExecute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.BookingWithSession{testBooking()}}
	uc := NewUseCase(repo, nopLogger{})
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC) }

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "bookings-2024-06-01.csv", resp.Filename)

	records := parseCSV(t, resp.Content)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])

	row := records[1]
	require.Len(t, row, len(csvHeader))
	assert.Equal(t, "1", row[0])
	// Запятая в имени экранируется кавычками и переживает разбор
	assert.Equal(t, "Smith, Jane", row[1])
	assert.Equal(t, "Reformer Class", row[4])
	assert.Equal(t, "2024-06-03", row[5])
	assert.Equal(t, "10:00", row[6])
	assert.Equal(t, "55", row[7])
	assert.Equal(t, "250000", row[8])
	assert.Equal(t, "confirmed", row[9])
	assert.Equal(t, "intermediate", row[10])
	assert.Equal(t, "knee injury", row[11])
	// Необязательные поля без значения выгружаются пустыми
	assert.Equal(t, "", row[12])
	assert.Equal(t, "", row[13])
	assert.Equal(t, "", row[14])
	assert.Equal(t, "2024-05-28", row[15])
}

func TestExecute_EmptyResult(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	records := parseCSV(t, resp.Content)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}

func TestExecute_PassesFilter(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	status := domain.BookingStatusPending
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		Search:          "jane",
		Status:          &status,
		SessionTypeName: ptr.Ptr("Reformer Class"),
		StartDate:       &start,
		EndDate:         &end,
	})

	require.NoError(t, err)
	assert.Equal(t, "jane", repo.lastFilter.Search)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.BookingStatusPending, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.SessionTypeName)
	assert.Equal(t, "Reformer Class", *repo.lastFilter.SessionTypeName)
}

func TestExecute_InvertedDateRange(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	start := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
