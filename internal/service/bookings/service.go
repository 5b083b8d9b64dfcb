package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlnk/StudioBookingService/internal/domain"
	bookingRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/booking"
	"github.com/avlnk/StudioBookingService/internal/service/bookings/models"
)

// Количество записей в ленте последних бронирований
const recentBookingsLimit = 10

// Service сервис управления жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Get получает бронирование по идентификатору вместе с данными сессии
func (s *Service) Get(ctx context.Context, id int64) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetWithSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingWithSession(b), nil
}

// List получает бронирования по фильтру.
// Все условия фильтра комбинируются через AND.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Status != nil {
		switch *req.Status {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: date range end is before start", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		Search:          strings.TrimSpace(req.Search),
		Status:          req.Status,
		SessionTypeName: req.SessionTypeName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingWithSessionList(bookings), nil
}

// Recent получает последние созданные бронирования
func (s *Service) Recent(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.Recent(ctx, recentBookingsLimit)
	if err != nil {
		s.logger.Error("Recent: repository error: %v", err)
		return nil, fmt.Errorf("%w: Recent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingWithSessionList(bookings), nil
}

// Confirm переводит бронирование из pending в confirmed.
// Подтверждение уже подтвержденного бронирования успешно и ничего не меняет.
// Подтверждение отмененного бронирования отклоняется: место могло быть
// занято другим клиентом после отмены.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if existing.IsCancelled() {
		s.logger.Warn("Confirm: booking id=%d is cancelled", id)
		return nil, ErrBookingCancelled
	}

	if existing.Status != domain.BookingStatusConfirmed {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Confirm: failed to update status for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Confirm - failed to update status: %v", ErrInternal, err)
		}
	}

	confirmed, err := s.bookingRepo.GetWithSessionByID(ctx, id)
	if err != nil {
		s.logger.Error("Confirm: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBookingWithSession(confirmed), nil
}

// Cancel отменяет бронирование и освобождает место.
// Операция идемпотентна: повторная отмена успешна и сохраняет
// исходные причину и время отмены.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	alreadyCancelled := existing.IsCancelled()
	if !alreadyCancelled {
		reason := domain.DefaultCancellationReason
		if req != nil && req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
			reason = strings.TrimSpace(*req.Reason)
		}

		if err := s.bookingRepo.Cancel(ctx, id, reason); err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
		}
	}

	cancelled, err := s.bookingRepo.GetWithSessionByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to reload booking: %v", ErrInternal, err)
	}

	if !alreadyCancelled {
		go s.sendCancellationEmail(cancelled)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBookingWithSession(cancelled), nil
}

// sendCancellationEmail отправляет письмо об отмене.
// Ошибка отправки только логируется и не влияет на результат отмены.
func (s *Service) sendCancellationEmail(b *domain.BookingWithSession) {
	ctx := context.Background()
	if err := s.notifier.SendBookingCancellation(ctx, b.Email, b); err != nil {
		s.logger.Warn("Cancel: failed to send cancellation email for booking id=%d: %v", b.ID, err)
	}
}
