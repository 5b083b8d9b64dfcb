package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlnk/StudioBookingService/internal/domain"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
	"github.com/avlnk/StudioBookingService/internal/service/sessions/models"
)

// Service сервис для работы с сессиями
type Service struct {
	sessionRepo     SessionRepository
	sessionTypeRepo SessionTypeRepository
	bookingRepo     BookingRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	sessionTypeRepo SessionTypeRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:     sessionRepo,
		sessionTypeRepo: sessionTypeRepo,
		bookingRepo:     bookingRepo,
		logger:          logger,
	}
}

// List получает активные сессии за период вместе с данными типа
// и производными счетчиками доступности
func (s *Service) List(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error) {
	if req.FromDate != nil && req.ToDate != nil && req.ToDate.Before(*req.FromDate) {
		return nil, fmt.Errorf("%w: date range end is before start", ErrInvalidInput)
	}

	filter := domain.SessionsFilter{
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		ActiveOnly: true,
	}

	sessions, err := s.sessionRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSessionWithTypeList(sessions), nil
}

// Get получает сессию по идентификатору с данными типа и доступностью
func (s *Service) Get(ctx context.Context, id int64) (*models.SessionResponse, error) {
	swt, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSessionWithType(swt), nil
}

// Update переносит сессию на другой тип, дату или время.
// Слот (тип, дата, время) проверяется на занятость без учета самой сессии.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("Update: updating session id=%d", id)

	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	existing, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Update: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	sessionType, err := s.sessionTypeRepo.GetByID(ctx, req.SessionTypeID)
	if err != nil {
		if errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound) {
			s.logger.Warn("Update: session type id=%d not found", req.SessionTypeID)
			return nil, ErrSessionTypeNotFound
		}
		s.logger.Error("Update: failed to get session type id=%d: %v", req.SessionTypeID, err)
		return nil, fmt.Errorf("%w: Update - failed to get session type: %v", ErrInternal, err)
	}
	if !sessionType.IsActive {
		s.logger.Warn("Update: session type id=%d is inactive", req.SessionTypeID)
		return nil, ErrSessionTypeNotFound
	}

	occupied, err := s.sessionRepo.ExistsAtSlot(ctx, req.SessionTypeID, req.Date, req.StartTime, &id)
	if err != nil {
		s.logger.Error("Update: failed to check slot for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to check slot: %v", ErrInternal, err)
	}
	if occupied {
		s.logger.Warn("Update: slot conflict for session id=%d", id)
		return nil, ErrSlotConflict
	}

	existing.SessionTypeID = req.SessionTypeID
	existing.Date = req.Date
	existing.StartTime = req.StartTime

	if err := s.sessionRepo.Update(ctx, &existing.Session); err != nil {
		switch {
		case errors.Is(err, sessionRepo.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, sessionRepo.ErrSlotConflict):
			s.logger.Warn("Update: slot conflict for session id=%d", id)
			return nil, ErrSlotConflict
		default:
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload session: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated session id=%d", id)
	return models.FromDomainSessionWithType(updated), nil
}

// Deactivate мягко удаляет сессию.
// Отклоняется, пока у сессии остаются неотмененные бронирования.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating session id=%d", id)

	activeBookings, err := s.bookingRepo.CountActiveBySession(ctx, id)
	if err != nil {
		s.logger.Error("Deactivate: failed to count bookings for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - failed to count bookings: %v", ErrInternal, err)
	}
	if activeBookings > 0 {
		s.logger.Warn("Deactivate: session id=%d has %d active bookings", id, activeBookings)
		return ErrHasActiveBookings
	}

	if err := s.sessionRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Deactivate: session id=%d not found", id)
			return ErrSessionNotFound
		}
		s.logger.Error("Deactivate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated session id=%d", id)
	return nil
}
