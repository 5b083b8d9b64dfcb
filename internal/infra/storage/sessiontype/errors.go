package sessiontype

import "errors"

var (
	// ErrSessionTypeNotFound возвращается, когда тип сессии не найден
	ErrSessionTypeNotFound = errors.New("sessiontype.repository: session type not found")

	// ErrNameConflict возвращается, когда активный тип сессии с таким именем уже существует
	ErrNameConflict = errors.New("sessiontype.repository: active session type with this name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sessiontype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sessiontype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sessiontype.repository: failed to scan row")
)
