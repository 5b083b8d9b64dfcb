package sessiontype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/dbmetrics"
	"github.com/avlnk/StudioBookingService/pkg/psqlbuilder"
)

// Имя частичного уникального индекса на lower(name) WHERE is_active.
// Индекс - последняя линия защиты уникальности имени, проверка в коде её дублирует.
const uqActiveName = "uq_session_types_active_name"

var sessionTypeColumns = []string{
	"id",
	"name",
	"description",
	"capacity",
	"duration_minutes",
	"price",
	"color",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с типами сессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип сессии
func (r *Repository) Create(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_types").
		Columns("name", "description", "capacity", "duration_minutes", "price", "color").
		Values(st.Name, st.Description, st.Capacity, st.DurationMinutes, st.Price, st.Color).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.IsActive,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, uqActiveName) {
			return nil, ErrNameConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return st, nil
}

// GetByID получает тип сессии по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionTypeColumns...).
		From("session_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var st domain.SessionType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.Capacity,
		&st.DurationMinutes,
		&st.Price,
		&st.Color,
		&st.IsActive,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session type: %w", ErrScanRow, err)
	}

	return &st, nil
}

// ListActive получает все активные типы сессий, отсортированные по имени
func (r *Repository) ListActive(ctx context.Context) ([]*domain.SessionType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionTypeColumns...).
		From("session_types").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.SessionType, 0)
	for rows.Next() {
		var st domain.SessionType
		if err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Description,
			&st.Capacity,
			&st.DurationMinutes,
			&st.Price,
			&st.Color,
			&st.IsActive,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan session type: %w", ErrScanRow, err)
		}
		types = append(types, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return types, nil
}

// Update обновляет поля типа сессии
func (r *Repository) Update(ctx context.Context, st *domain.SessionType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_types").
		Set("name", st.Name).
		Set("description", st.Description).
		Set("capacity", st.Capacity).
		Set("duration_minutes", st.DurationMinutes).
		Set("price", st.Price).
		Set("color", st.Color).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": st.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, uqActiveName) {
			return ErrNameConflict
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionTypeNotFound
	}

	return nil
}

// Deactivate мягко удаляет тип сессии (снимает флаг is_active)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_types").
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
		return ErrSessionTypeNotFound
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
