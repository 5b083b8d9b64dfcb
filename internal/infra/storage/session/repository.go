package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/dbmetrics"
	"github.com/avlnk/StudioBookingService/pkg/psqlbuilder"
	"github.com/avlnk/StudioBookingService/pkg/types"
)

// Имя частичного уникального индекса на (session_type_id, session_date, start_time)
// WHERE is_active. Последняя линия защиты от дублирования слота.
const uqActiveSlot = "uq_sessions_active_slot"

// bookedSlotsExpr подсчет активных бронирований сессии в момент чтения.
// Счетчик всегда выводится из строк bookings, денормализованного столбца нет.
const bookedSlotsExpr = "(SELECT COUNT(*) FROM bookings b WHERE b.session_id = s.id AND b.status IN ('pending', 'confirmed')) AS booked_slots"

var sessionWithTypeColumns = []string{
	"s.id",
	"s.session_type_id",
	"s.session_date",
	"s.start_time",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
	"st.id",
	"st.name",
	"st.description",
	"st.capacity",
	"st.duration_minutes",
	"st.price",
	"st.color",
	"st.is_active",
	"st.created_at",
	"st.updated_at",
	bookedSlotsExpr,
}

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую сессию
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("session_type_id", "session_date", "start_time").
		Values(s.SessionTypeID, s.Date, s.StartTime).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, uqActiveSlot) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает сессию с типом и количеством активных бронирований
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionWithType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionWithTypeColumns...).
		From("sessions s").
		Join("session_types st ON st.id = s.session_type_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	swt, err := scanSessionWithType(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %w", ErrScanRow, err)
	}

	return swt, nil
}

// GetForUpdate получает строку сессии без производных полей.
// Внутри транзакции блокирует строку (FOR UPDATE) - используется в usecase
// создания бронирования для защиты от гонки на последнем свободном месте.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"session_type_id",
		"session_date",
		"start_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %w", ErrBuildQuery, err)
	}

	var s domain.Session
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SessionTypeID,
		&s.Date,
		&s.StartTime,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan session: %w", ErrScanRow, err)
	}

	return &s, nil
}

// ListWithFilter получает сессии с фильтрацией по периоду.
// Результат отсортирован по дате и времени начала по возрастанию.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SessionsFilter) ([]*domain.SessionWithType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionWithTypeColumns...).
		From("sessions s").
		Join("session_types st ON st.id = s.session_type_id")

	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.session_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.session_date": *filter.ToDate})
	}

	query, args, err := selectBuilder.
		OrderBy("s.session_date ASC", "s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.SessionWithType, 0)
	for rows.Next() {
		swt, err := scanSessionWithType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan session: %w", ErrScanRow, err)
		}
		sessions = append(sessions, swt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

// ExistsAtSlot проверяет, занята ли активная ячейка (тип, дата, время).
// excludeID исключает сессию из проверки - используется при обновлении,
// чтобы сессия не конфликтовала сама с собой.
func (r *Repository) ExistsAtSlot(ctx context.Context, sessionTypeID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("sessions").
		Where(squirrel.Eq{
			"session_type_id": sessionTypeID,
			"session_date":    date,
			"start_time":      startTime,
			"is_active":       true,
		})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - build select query: %w", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - scan result: %w", ErrScanRow, err)
	}

	return true, nil
}

// CountActiveByType подсчитывает активные сессии, ссылающиеся на тип.
// Используется для защиты от деактивации типа с активными сессиями.
func (r *Repository) CountActiveByType(ctx context.Context, sessionTypeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("sessions").
		Where(squirrel.Eq{"session_type_id": sessionTypeID, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByType - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByType - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет тип, дату и время сессии
func (r *Repository) Update(ctx context.Context, s *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("session_type_id", s.SessionTypeID).
		Set("session_date", s.Date).
		Set("start_time", s.StartTime).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, uqActiveSlot) {
			return ErrSlotConflict
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Deactivate мягко удаляет сессию (снимает флаг is_active)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка - нарушение указанного уникального индекса
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSessionWithType(row rowScanner) (*domain.SessionWithType, error) {
	var swt domain.SessionWithType
	err := row.Scan(
		&swt.ID,
		&swt.SessionTypeID,
		&swt.Date,
		&swt.StartTime,
		&swt.IsActive,
		&swt.CreatedAt,
		&swt.UpdatedAt,
		&swt.SessionType.ID,
		&swt.SessionType.Name,
		&swt.SessionType.Description,
		&swt.SessionType.Capacity,
		&swt.SessionType.DurationMinutes,
		&swt.SessionType.Price,
		&swt.SessionType.Color,
		&swt.SessionType.IsActive,
		&swt.SessionType.CreatedAt,
		&swt.SessionType.UpdatedAt,
		&swt.BookedSlots,
	)
	if err != nil {
		return nil, err
	}
	return &swt, nil
}
