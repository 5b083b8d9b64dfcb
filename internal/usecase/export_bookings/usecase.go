package export_bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// csvHeader фиксированный порядок колонок выгрузки
var csvHeader = []string{
	"ID",
	"Full Name",
	"Email",
	"Phone",
	"Session Type",
	"Date",
	"Time",
	"Duration (min)",
	"Price",
	"Status",
	"Experience",
	"Medical Conditions",
	"Emergency Contact",
	"Emergency Phone",
	"Special Requests",
	"Created At",
}

// UseCase use case выгрузки бронирований в CSV
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute выполняет выгрузку бронирований по фильтру в CSV
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: date range end is before start", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		Search:          req.Search,
		Status:          req.Status,
		SessionTypeName: req.SessionTypeName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportBookings - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportBookings - write header: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		if err := w.Write(bookingRecord(b)); err != nil {
			return nil, fmt.Errorf("%w: ExportBookings - write record: %v", ErrInternal, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportBookings - flush: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportBookings: exported %d bookings", len(bookings))

	return &Response{
		Filename: fmt.Sprintf("bookings-%s.csv", uc.now().Format(domain.DateFormat)),
		Content:  buf.Bytes(),
	}, nil
}

// bookingRecord строка выгрузки для одного бронирования
func bookingRecord(b *domain.BookingWithSession) []string {
	price := ""
	if b.SessionTypePrice != nil {
		price = strconv.FormatFloat(*b.SessionTypePrice, 'f', -1, 64)
	}

	return []string{
		strconv.FormatInt(b.ID, 10),
		b.FullName,
		b.Email,
		b.Phone,
		b.SessionTypeName,
		b.SessionDate.Format(domain.DateFormat),
		b.SessionTime.String(),
		strconv.Itoa(b.DurationMinutes),
		price,
		string(b.Status),
		string(b.Experience),
		optional(b.MedicalConditions),
		optional(b.EmergencyContact),
		optional(b.EmergencyPhone),
		optional(b.SpecialRequests),
		b.CreatedAt.Format(domain.DateFormat),
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
