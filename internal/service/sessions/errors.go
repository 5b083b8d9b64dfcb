package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrSessionTypeNotFound возвращается, когда тип сессии не найден или неактивен
	ErrSessionTypeNotFound = errors.New("sessions: session type not found")

	// ErrSlotConflict возвращается, когда активная сессия этого типа
	// уже занимает дату и время
	ErrSlotConflict = errors.New("sessions: session already exists at this date and time")

	// ErrHasActiveBookings возвращается при попытке деактивировать сессию
	// с неотмененными бронированиями
	ErrHasActiveBookings = errors.New("sessions: session has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
