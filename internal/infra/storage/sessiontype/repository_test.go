package sessiontype

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
	"github.com/avlnk/StudioBookingService/pkg/ptr"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func sessionTypeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "capacity", "duration_minutes",
		"price", "color", "is_active", "created_at", "updated_at",
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO session_types (name,description,capacity,duration_minutes,price,color) "+
			"VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, is_active, created_at, updated_at",
	)).
		WithArgs("Reformer Class", "Equipment based class", 8, 55, 250000.0, domain.DefaultSessionTypeColor).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "created_at", "updated_at"}).
			AddRow(int64(7), true, now, now))

	created, err := repo.Create(context.Background(), &domain.SessionType{
		Name:            "Reformer Class",
		Description:     "Equipment based class",
		Capacity:        8,
		DurationMinutes: 55,
		Price:           ptr.Ptr(250000.0),
		Color:           domain.DefaultSessionTypeColor,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NameConflict(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO session_types").
		WillReturnError(&pq.Error{Code: "23505", Constraint: uqActiveName})

	_, err := repo.Create(context.Background(), &domain.SessionType{Name: "Reformer Class"})

	assert.ErrorIs(t, err, ErrNameConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, capacity, duration_minutes, price, color, is_active, "+
			"created_at, updated_at FROM session_types WHERE id = $1",
	)).
		WithArgs(int64(7)).
		WillReturnRows(sessionTypeRows().
			AddRow(int64(7), "Reformer Class", "Equipment based class", 8, 55,
				250000.0, domain.DefaultSessionTypeColor, true, now, now))

	st, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Reformer Class", st.Name)
	assert.Equal(t, 8, st.Capacity)
	require.NotNil(t, st.Price)
	assert.Equal(t, 250000.0, *st.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM session_types").
		WithArgs(int64(404)).
		WillReturnRows(sessionTypeRows())

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrSessionTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM session_types WHERE is_active = $1 ORDER BY name ASC",
	)).
		WithArgs(true).
		WillReturnRows(sessionTypeRows().
			AddRow(int64(1), "Mat Class", "Floor class", 12, 45,
				nil, domain.DefaultSessionTypeColor, true, now, now).
			AddRow(int64(2), "Reformer Class", "Equipment based class", 8, 55,
				250000.0, domain.DefaultSessionTypeColor, true, now, now))

	types, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Mat Class", types[0].Name)
	// Цена опциональна, NULL читается как nil
	assert.Nil(t, types[0].Price)
	assert.Equal(t, "Reformer Class", types[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE session_types SET name = $1, description = $2, capacity = $3, "+
			"duration_minutes = $4, price = $5, color = $6, updated_at = now() WHERE id = $7",
	)).
		WithArgs("Mat Class Plus", "Extended floor class", 10, 60, nil, domain.DefaultSessionTypeColor, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.SessionType{
		ID:              1,
		Name:            "Mat Class Plus",
		Description:     "Extended floor class",
		Capacity:        10,
		DurationMinutes: 60,
		Color:           domain.DefaultSessionTypeColor,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE session_types").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.SessionType{ID: 404, Name: "X"})

	assert.ErrorIs(t, err, ErrSessionTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NameConflict(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE session_types").
		WillReturnError(&pq.Error{Code: "23505", Constraint: uqActiveName})

	err := repo.Update(context.Background(), &domain.SessionType{ID: 1, Name: "Taken"})

	assert.ErrorIs(t, err, ErrNameConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE session_types SET is_active = $1, updated_at = now() WHERE id = $2 AND is_active = $3",
	)).
		WithArgs(false, int64(1), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Deactivate(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE session_types").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), 404)

	assert.ErrorIs(t, err, ErrSessionTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PreservesDriverError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO session_types").
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	_, err := repo.Create(context.Background(), &domain.SessionType{Name: "Reformer Class"})

	require.ErrorIs(t, err, ErrExecQuery)
	// Код ошибки драйвера должен быть различим через errors.As,
	// от этого зависит повтор сериализуемых транзакций
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505", Constraint: uqActiveName}, uqActiveName))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23505", Constraint: "other_index"}, uqActiveName))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}, uqActiveName))
	assert.False(t, isUniqueViolation(assert.AnError, uqActiveName))
}
