package booking

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
)

// Имя частичного уникального индекса на (session_id, lower(email))
// WHERE status <> 'cancelled'. Последняя линия защиты от дублей:
// проверка в usecase её дублирует, но не заменяет.
const uqActiveEmail = "uq_bookings_active_email"

var bookingColumns = []string{
	"id",
	"session_id",
	"full_name",
	"email",
	"phone",
	"emergency_contact",
	"emergency_phone",
	"medical_conditions",
	"experience",
	"special_requests",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

var bookingWithSessionColumns = []string{
	"bk.id",
	"bk.session_id",
	"bk.full_name",
	"bk.email",
	"bk.phone",
	"bk.emergency_contact",
	"bk.emergency_phone",
	"bk.medical_conditions",
	"bk.experience",
	"bk.special_requests",
	"bk.status",
	"bk.cancellation_reason",
	"bk.cancelled_at",
	"bk.created_at",
	"bk.updated_at",
	"s.session_date",
	"s.start_time",
	"st.name",
	"st.duration_minutes",
	"st.price",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"session_id",
			"full_name",
			"email",
			"phone",
			"emergency_contact",
			"emergency_phone",
			"medical_conditions",
			"experience",
			"special_requests",
			"status",
		).
		Values(
			b.SessionID,
			b.FullName,
			b.Email,
			b.Phone,
			b.EmergencyContact,
			b.EmergencyPhone,
			b.MedicalConditions,
			b.Experience,
			b.SpecialRequests,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, uqActiveEmail) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// GetWithSessionByID получает бронирование с данными сессии и её типа.
// Используется для писем и детального просмотра.
func (r *Repository) GetWithSessionByID(ctx context.Context, id int64) (*domain.BookingWithSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithSessionColumns...).
		From("bookings bk").
		Join("sessions s ON s.id = bk.session_id").
		Join("session_types st ON st.id = s.session_type_id").
		Where(squirrel.Eq{"bk.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithSessionByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	bws, err := scanBookingWithSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithSessionByID - scan booking: %w", ErrScanRow, err)
	}

	return bws, nil
}

// ListBySession получает бронирования сессии.
// При activeOnly возвращаются только занимающие место бронирования
// (pending и confirmed).
func (r *Repository) ListBySession(ctx context.Context, sessionID int64, activeOnly bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("created_at ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveBookingStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией.
// Все условия комбинируются через AND; результат отсортирован по дате сессии
// и времени начала по возрастанию, затем по времени создания по убыванию.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingWithSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingWithSessionColumns...).
		From("bookings bk").
		Join("sessions s ON s.id = bk.session_id").
		Join("session_types st ON st.id = s.session_type_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"bk.full_name": pattern},
			squirrel.ILike{"bk.email": pattern},
			squirrel.ILike{"bk.phone": pattern},
		})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"bk.status": *filter.Status})
	}
	if filter.SessionTypeName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"st.name": *filter.SessionTypeName})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.session_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.session_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("s.session_date ASC", "s.start_time ASC", "bk.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookingsWithSession(rows)
}

// Recent получает последние неотмененные бронирования
func (r *Repository) Recent(ctx context.Context, limit uint64) ([]*domain.BookingWithSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithSessionColumns...).
		From("bookings bk").
		Join("sessions s ON s.id = bk.session_id").
		Join("session_types st ON st.id = s.session_type_id").
		Where(squirrel.Eq{"bk.status": domain.ActiveBookingStatuses}).
		OrderBy("bk.created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookingsWithSession(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины.
// Уже отмененные строки не трогает: первый cancelled_at и причина сохраняются.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.BookingStatusCancelled}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountActiveBySession подсчитывает неотмененные бронирования сессии
func (r *Repository) CountActiveBySession(ctx context.Context, sessionID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"session_id": sessionID,
			"status":     domain.ActiveBookingStatuses,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySession - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySession - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// CountActive подсчитывает все неотмененные бронирования
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	return r.countActive(ctx, nil, nil)
}

// CountActiveBetween подсчитывает неотмененные бронирования на сессии
// в периоде дат включительно
func (r *Repository) CountActiveBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.countActive(ctx, &from, &to)
}

func (r *Repository) countActive(ctx context.Context, from, to *time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("bookings bk").
		Where(squirrel.Eq{"bk.status": domain.ActiveBookingStatuses})

	if from != nil || to != nil {
		selectBuilder = selectBuilder.Join("sessions s ON s.id = bk.session_id")
	}
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.session_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.session_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countActive - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countActive - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// SumConfirmedRevenueBetween суммирует цену типа сессии по подтвержденным
// бронированиям на сессии в периоде дат включительно
func (r *Repository) SumConfirmedRevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(st.price), 0)").
		From("bookings bk").
		Join("sessions s ON s.id = bk.session_id").
		Join("session_types st ON st.id = s.session_type_id").
		Where(squirrel.Eq{"bk.status": domain.BookingStatusConfirmed}).
		Where(squirrel.GtOrEq{"s.session_date": from}).
		Where(squirrel.LtOrEq{"s.session_date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumConfirmedRevenueBetween - build select query: %w", ErrBuildQuery, err)
	}

	var sum float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumConfirmedRevenueBetween - scan sum: %w", ErrScanRow, err)
	}

	return sum, nil
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

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.SessionID,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.EmergencyContact,
		&b.EmergencyPhone,
		&b.MedicalConditions,
		&b.Experience,
		&b.SpecialRequests,
		&b.Status,
		&b.CancellationReason,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", ErrScanRow, err)
	}
	return bookings, nil
}

func scanBookingWithSession(row rowScanner) (*domain.BookingWithSession, error) {
	var bws domain.BookingWithSession
	err := row.Scan(
		&bws.ID,
		&bws.SessionID,
		&bws.FullName,
		&bws.Email,
		&bws.Phone,
		&bws.EmergencyContact,
		&bws.EmergencyPhone,
		&bws.MedicalConditions,
		&bws.Experience,
		&bws.SpecialRequests,
		&bws.Status,
		&bws.CancellationReason,
		&bws.CancelledAt,
		&bws.CreatedAt,
		&bws.UpdatedAt,
		&bws.SessionDate,
		&bws.SessionTime,
		&bws.SessionTypeName,
		&bws.DurationMinutes,
		&bws.SessionTypePrice,
	)
	if err != nil {
		return nil, err
	}
	return &bws, nil
}

func scanBookingsWithSession(rows *sql.Rows) ([]*domain.BookingWithSession, error) {
	bookings := make([]*domain.BookingWithSession, 0)
	for rows.Next() {
		bws, err := scanBookingWithSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, bws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", ErrScanRow, err)
	}
	return bookings, nil
}
