package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlnk/StudioBookingService/internal/domain"
	bookingRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/booking"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
)

// UseCase use case для создания бронирования
type UseCase struct {
	sessionRepo     SessionRepository
	sessionTypeRepo SessionTypeRepository
	bookingRepo     BookingRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	sessionTypeRepo SessionTypeRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		sessionTypeRepo: sessionTypeRepo,
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции
// с блокировкой строки сессии, чтобы конкурирующие запросы не могли
// занять больше мест, чем позволяет вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%d, email=%s", req.SessionID, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var created *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем сессию с блокировкой (FOR UPDATE)
		session, err := uc.sessionRepo.GetForUpdate(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Warn("CreateBooking: session id=%d not found", req.SessionID)
				return ErrSessionNotFound
			}
			uc.logger.Error("CreateBooking: failed to get session id=%d: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to get session: %w", ErrInternal, err)
		}

		// 2.2. Неактивная сессия недоступна для бронирования
		if !session.IsActive {
			uc.logger.Warn("CreateBooking: session id=%d is inactive", req.SessionID)
			return ErrSessionNotFound
		}

		// 2.3. Получаем тип сессии ради вместимости
		sessionType, err := uc.sessionTypeRepo.GetByID(txCtx, session.SessionTypeID)
		if err != nil {
			if errors.Is(err, sessionTypeRepo.ErrSessionTypeNotFound) {
				uc.logger.Warn("CreateBooking: session type id=%d not found", session.SessionTypeID)
				return ErrSessionNotFound
			}
			uc.logger.Error("CreateBooking: failed to get session type id=%d: %v", session.SessionTypeID, err)
			return fmt.Errorf("%w: failed to get session type: %w", ErrInternal, err)
		}

		// 2.4. Считаем занятые места по неотмененным бронированиям
		bookings, err := uc.bookingRepo.ListBySession(txCtx, req.SessionID, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for session id=%d: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		// 2.5. Проверяем доступность места.
		// Переполнение проверяется раньше дубликата: на полной сессии
		// повторный email получает ответ "мест нет", а не "уже записан".
		availability := domain.CalculateAvailability(sessionType.Capacity, bookings)
		if availability.IsFull() {
			uc.logger.Warn("CreateBooking: session id=%d is full, %d/%d slots taken",
				req.SessionID, availability.BookedSlots, availability.Capacity)
			return ErrSessionFull
		}

		// 2.6. Проверяем дубликат по email в рамках сессии
		for _, b := range bookings {
			if strings.EqualFold(b.Email, email) {
				uc.logger.Warn("CreateBooking: duplicate booking for session id=%d email=%s", req.SessionID, email)
				return ErrDuplicateBooking
			}
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d slots taken",
			availability.BookedSlots, availability.Capacity)

		// 2.7. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			SessionID:         req.SessionID,
			FullName:          strings.TrimSpace(req.FullName),
			Email:             email,
			Phone:             strings.TrimSpace(req.Phone),
			EmergencyContact:  req.EmergencyContact,
			EmergencyPhone:    req.EmergencyPhone,
			MedicalConditions: req.MedicalConditions,
			Experience:        resolveExperience(req),
			SpecialRequests:   req.SpecialRequests,
			Status:            domain.BookingStatusPending,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return ErrDuplicateBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Перечитываем бронирование вместе с данными сессии
	withSession, err := uc.bookingRepo.GetWithSessionByID(ctx, created.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load booking id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to load created booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 4. Письмо-подтверждение отправляется асинхронно и не влияет на результат
	go uc.sendConfirmationEmail(withSession)

	return toResponse(withSession), nil
}

// sendConfirmationEmail отправляет письмо о создании бронирования.
// Ошибка отправки только логируется.
func (uc *UseCase) sendConfirmationEmail(b *domain.BookingWithSession) {
	ctx := context.Background()
	if err := uc.notifier.SendBookingConfirmation(ctx, b.Email, b); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation email for booking id=%d: %v", b.ID, err)
	}
}
