package sessiontypes

import "errors"

var (
	// ErrSessionTypeNotFound возвращается, когда тип сессии не найден
	ErrSessionTypeNotFound = errors.New("sessiontypes: session type not found")

	// ErrNameConflict возвращается, когда активный тип с таким именем уже существует
	ErrNameConflict = errors.New("sessiontypes: session type with this name already exists")

	// ErrHasActiveSessions возвращается при попытке деактивировать тип,
	// на который ссылаются активные сессии
	ErrHasActiveSessions = errors.New("sessiontypes: session type has active sessions")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessiontypes: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessiontypes: internal error")
)
