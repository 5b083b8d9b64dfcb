package generate_sessions

import "errors"

var (
	// ErrSessionTypeNotFound возвращается, когда тип сессии не найден или неактивен
	ErrSessionTypeNotFound = errors.New("generate_sessions: session type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_sessions: invalid input data")

	// ErrNothingToCreate возвращается, когда после раскрытия расписания
	// не осталось ни одного слота
	ErrNothingToCreate = errors.New("generate_sessions: no session dates match the schedule")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("generate_sessions: internal error")
)
