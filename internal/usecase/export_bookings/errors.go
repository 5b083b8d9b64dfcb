package export_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("export_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("export_bookings: internal error")
)
