package sessiontypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlnk/StudioBookingService/internal/domain"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
	"github.com/avlnk/StudioBookingService/internal/service/sessiontypes/models"
)

// Service сервис для работы с типами сессий
type Service struct {
	sessionTypeRepo SessionTypeRepository
	sessionRepo     SessionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса типов сессий
func NewService(
	sessionTypeRepo SessionTypeRepository,
	sessionRepo SessionRepository,
	logger Logger,
) *Service {
	return &Service{
		sessionTypeRepo: sessionTypeRepo,
		sessionRepo:     sessionRepo,
		logger:          logger,
	}
}

// List получает все активные типы сессий, отсортированные по имени
func (s *Service) List(ctx context.Context) (*models.SessionTypeListResponse, error) {
	types, err := s.sessionTypeRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSessionTypeList(types), nil
}

// Create создает новый тип сессии
func (s *Service) Create(ctx context.Context, req *models.CreateSessionTypeRequest) (*models.SessionTypeResponse, error) {
	s.logger.Info("Create: creating session type name=%q capacity=%d", req.Name, req.Capacity)

	if err := validateSessionTypeFields(req.Name, req.Description, req.Capacity, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	color := domain.DefaultSessionTypeColor
	if req.Color != nil && *req.Color != "" {
		color = *req.Color
	}

	st := &domain.SessionType{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Capacity:        req.Capacity,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Color:           color,
	}

	created, err := s.sessionTypeRepo.Create(ctx, st)
	if err != nil {
		if errors.Is(err, sessionTypeRepo.ErrNameConflict) {
			s.logger.Warn("Create: name conflict for %q", req.Name)
			return nil, ErrNameConflict
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created session type id=%d", created.ID)
	return models.FromDomainSessionType(created), nil
}

// Update обновляет поля типа сессии
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSessionTypeRequest) (*models.SessionTypeResponse, error) {
	s.logger.Info("Update: updating session type id=%d", id)

	if err := validateSessionTypeFields(req.Name, req.Description, req.Capacity, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	existing, err := s.sessionTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound) {
			s.logger.Warn("Update: session type id=%d not found", id)
			return nil, ErrSessionTypeNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Description = req.Description
	existing.Capacity = req.Capacity
	existing.DurationMinutes = req.DurationMinutes
	existing.Price = req.Price
	if req.Color != nil && *req.Color != "" {
		existing.Color = *req.Color
	}

	if err := s.sessionTypeRepo.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound):
			return nil, ErrSessionTypeNotFound
		case errors.Is(err, sessionTypeRepo.ErrNameConflict):
			s.logger.Warn("Update: name conflict for id=%d name=%q", id, req.Name)
			return nil, ErrNameConflict
		default:
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated session type id=%d", id)
	return models.FromDomainSessionType(existing), nil
}

// Deactivate мягко удаляет тип сессии.
// Отклоняется, пока на тип ссылается хотя бы одна активная сессия.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating session type id=%d", id)

	activeSessions, err := s.sessionRepo.CountActiveByType(ctx, id)
	if err != nil {
		s.logger.Error("Deactivate: failed to count sessions for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - failed to count sessions: %v", ErrInternal, err)
	}
	if activeSessions > 0 {
		s.logger.Warn("Deactivate: session type id=%d has %d active sessions", id, activeSessions)
		return ErrHasActiveSessions
	}

	if err := s.sessionTypeRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound) {
			s.logger.Warn("Deactivate: session type id=%d not found", id)
			return ErrSessionTypeNotFound
		}
		s.logger.Error("Deactivate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated session type id=%d", id)
	return nil
}

// validateSessionTypeFields проверяет обязательные поля типа сессии
func validateSessionTypeFields(name, description string, capacity, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
