package generate_sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avlnk/StudioBookingService/internal/domain"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
)

// UseCase use case массового создания сессий по расписанию
type UseCase struct {
	sessionRepo     SessionRepository
	sessionTypeRepo SessionTypeRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	sessionTypeRepo SessionTypeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		sessionTypeRepo: sessionTypeRepo,
		logger:          logger,
	}
}

// Execute выполняет use case создания сессий.
// Каждый слот создается независимо: конфликт занятого слота
// попадает в Failed и не прерывает создание остальных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSessions: type=%d, time=%s", req.SessionTypeID, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSessions: validation failed: %v", err)
		return nil, err
	}

	// 2. Тип должен существовать и быть активным
	sessionType, err := uc.sessionTypeRepo.GetByID(ctx, req.SessionTypeID)
	if err != nil {
		if errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound) {
			uc.logger.Warn("GenerateSessions: session type id=%d not found", req.SessionTypeID)
			return nil, ErrSessionTypeNotFound
		}
		uc.logger.Error("GenerateSessions: failed to get session type id=%d: %v", req.SessionTypeID, err)
		return nil, fmt.Errorf("%w: failed to get session type: %v", ErrInternal, err)
	}
	if !sessionType.IsActive {
		uc.logger.Warn("GenerateSessions: session type id=%d is inactive", req.SessionTypeID)
		return nil, ErrSessionTypeNotFound
	}

	// 3. Раскрываем расписание в список дат
	var dates []time.Time
	if req.Date != nil {
		dates = []time.Time{truncateToDay(*req.Date)}
	} else {
		dates = expandDates(req.Recurring.StartDate, req.Recurring.EndDate,
			req.Recurring.DaysOfWeek, req.Recurring.ExcludeDates)
	}

	if len(dates) == 0 {
		uc.logger.Warn("GenerateSessions: schedule expands to zero dates")
		return nil, ErrNothingToCreate
	}

	// 4. Создаем сессии независимо друг от друга
	resp := &Response{
		Successful: make([]*CreatedSession, 0, len(dates)),
		Failed:     make([]*FailedSlot, 0),
	}

	for _, date := range dates {
		session := &domain.Session{
			SessionTypeID: req.SessionTypeID,
			Date:          date,
			StartTime:     req.StartTime,
		}

		created, err := uc.sessionRepo.Create(ctx, session)
		if err != nil {
			reason := "internal error"
			if errors.Is(err, sessionRepo.ErrSlotConflict) {
				reason = "session already exists at this date and time"
				uc.logger.Warn("GenerateSessions: slot conflict for date=%s", date.Format(domain.DateFormat))
			} else {
				uc.logger.Error("GenerateSessions: failed to create session for date=%s: %v",
					date.Format(domain.DateFormat), err)
			}
			resp.Failed = append(resp.Failed, &FailedSlot{Date: date, Reason: reason})
			continue
		}

		resp.Successful = append(resp.Successful, &CreatedSession{
			ID:            created.ID,
			SessionTypeID: created.SessionTypeID,
			Date:          created.Date,
			StartTime:     created.StartTime,
			IsActive:      created.IsActive,
			CreatedAt:     created.CreatedAt,
		})
	}

	uc.logger.Info("GenerateSessions: created %d sessions, %d failed",
		len(resp.Successful), len(resp.Failed))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionTypeID <= 0 {
		return fmt.Errorf("%w: sessionTypeID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Date == nil && req.Recurring == nil {
		return fmt.Errorf("%w: either date or recurring schedule is required", ErrInvalidInput)
	}
	if req.Date != nil && req.Recurring != nil {
		return fmt.Errorf("%w: date and recurring schedule are mutually exclusive", ErrInvalidInput)
	}

	if req.Recurring != nil {
		r := req.Recurring
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return fmt.Errorf("%w: recurring schedule requires start and end dates", ErrInvalidInput)
		}
		if r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("%w: recurring end date is before start date", ErrInvalidInput)
		}
		if len(r.DaysOfWeek) == 0 {
			return fmt.Errorf("%w: recurring schedule requires at least one day of week", ErrInvalidInput)
		}
		valid := 0
		for _, name := range r.DaysOfWeek {
			if isKnownWeekday(name) {
				valid++
			}
		}
		if valid == 0 {
			return fmt.Errorf("%w: no valid day names in recurring schedule", ErrInvalidInput)
		}
	}

	return nil
}
