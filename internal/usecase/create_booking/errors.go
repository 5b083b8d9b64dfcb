package create_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или неактивна
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrSessionFull возвращается, когда все места на сессии заняты
	ErrSessionFull = errors.New("create_booking: session is fully booked")

	// ErrDuplicateBooking возвращается, когда у клиента уже есть
	// неотмененное бронирование на эту сессию
	ErrDuplicateBooking = errors.New("create_booking: active booking with this email already exists for the session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
