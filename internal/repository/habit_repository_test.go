package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (HabitRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewHabitRepository(db), mock
}

// SetCheck must emit a conflict-tolerant insert so that marking an
// already-marked date never errors and never duplicates the row.
func TestHabitRepository_SetCheckUsesOnConflictDoNothing(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "habit_checks" ("habit_id","date","created_at") VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
	)).
		WithArgs(uint64(7), "2024-01-10", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetCheck(7, "2024-01-10"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Clearing an absent check deletes zero rows and still reports success.
func TestHabitRepository_ClearCheckIsHardDelete(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "habit_checks" WHERE habit_id = $1 AND date = $2`,
	)).
		WithArgs(uint64(7), "2024-01-10").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.ClearCheck(7, "2024-01-10"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitRepository_ListByUserFiltersAndOrders(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
		AddRow(2, 1, "Second").
		AddRow(1, 1, "First")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "habits" WHERE user_id = $1 AND "habits"."deleted_at" IS NULL ORDER BY created_at DESC`,
	)).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	habits, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, habits, 2)
	require.Equal(t, "Second", habits[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
