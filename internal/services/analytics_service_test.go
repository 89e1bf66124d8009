package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"habitflow/internal/models"
	"habitflow/internal/repository"
)

func setupAnalyticsTestEnv(t *testing.T, today string) (*AnalyticsService, *HabitService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.Exercise{},
		&models.HabitCheck{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	clock := func() time.Time { return day(today) }
	habitRepo := repository.NewHabitRepository(db)
	return NewAnalyticsService(habitRepo, clock), NewHabitService(habitRepo, clock), db
}

func createHabitWithChecks(t *testing.T, svc *HabitService, userID uint64, name string, dates ...string) *models.Habit {
	t.Helper()

	habit, err := svc.CreateHabit(CreateHabitInput{UserID: userID, Name: name})
	require.NoError(t, err)

	for _, d := range dates {
		_, err := svc.ToggleCheck(userID, habit.ID, d, true)
		require.NoError(t, err)
	}
	return habit
}

func TestAnalyticsService_WorkedExample(t *testing.T) {
	analytics, habits, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	a := createHabitWithChecks(t, habits, 1, "Run", "2024-01-10")
	createHabitWithChecks(t, habits, 1, "Read")

	result, err := analytics.Daily(1, DailyInput{Days: 30, OnlyActive: true})
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalHabits)
	require.Len(t, result.Days, 1)
	row := result.Days[0]
	require.Equal(t, "2024-01-10", row.Date)
	require.Equal(t, 1, row.Completed)
	require.Equal(t, 2, row.Total)
	require.Equal(t, 50, row.Percent)
	require.Equal(t, []uint64{a.ID}, row.DoneHabitIDs)
}

func TestAnalyticsService_DefaultWindowEndsToday(t *testing.T) {
	analytics, habits, _ := setupAnalyticsTestEnv(t, "2024-03-31")

	createHabitWithChecks(t, habits, 1, "Run", "2024-03-31")

	result, err := analytics.Daily(1, DailyInput{Days: 30, OnlyActive: false})
	require.NoError(t, err)

	require.Equal(t, "2024-03-02", result.From)
	require.Equal(t, "2024-03-31", result.To)
	require.Len(t, result.Days, 30)
	require.Equal(t, "2024-03-02", result.Days[0].Date)
	require.Equal(t, "2024-03-31", result.Days[29].Date)
}

func TestAnalyticsService_OnlyActiveFiltering(t *testing.T) {
	analytics, habits, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	createHabitWithChecks(t, habits, 1, "Run", "2024-01-12", "2024-01-14")

	from := day("2024-01-11")
	to := day("2024-01-15")

	active, err := analytics.Daily(1, DailyInput{From: &from, To: &to, Days: 30, OnlyActive: true})
	require.NoError(t, err)
	require.Len(t, active.Days, 2)
	for _, row := range active.Days {
		require.Greater(t, row.Completed, 0)
	}

	all, err := analytics.Daily(1, DailyInput{From: &from, To: &to, Days: 30, OnlyActive: false})
	require.NoError(t, err)
	require.Len(t, all.Days, 5)
}

func TestAnalyticsService_EmptyHabitSet(t *testing.T) {
	analytics, _, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	from := day("2024-01-13")
	to := day("2024-01-15")

	result, err := analytics.Daily(1, DailyInput{From: &from, To: &to, Days: 30, OnlyActive: false})
	require.NoError(t, err)

	require.Equal(t, 0, result.TotalHabits)
	require.Len(t, result.Days, 3)
	for _, row := range result.Days {
		require.Equal(t, 0, row.Total)
		require.Equal(t, 0, row.Percent)
		require.Empty(t, row.DoneHabitIDs)
	}
}

func TestAnalyticsService_PercentRounds(t *testing.T) {
	analytics, habits, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	// 1 of 3 habits done: round(100/3) = 33
	createHabitWithChecks(t, habits, 1, "A", "2024-01-15")
	createHabitWithChecks(t, habits, 1, "B")
	createHabitWithChecks(t, habits, 1, "C")

	from := day("2024-01-15")
	to := day("2024-01-15")
	result, err := analytics.Daily(1, DailyInput{From: &from, To: &to, Days: 30, OnlyActive: false})
	require.NoError(t, err)
	require.Len(t, result.Days, 1)
	require.Equal(t, 33, result.Days[0].Percent)
}

func TestAnalyticsService_RejectsBadDayCounts(t *testing.T) {
	analytics, _, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	_, err := analytics.Daily(1, DailyInput{Days: 0})
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = analytics.Daily(1, DailyInput{Days: 366})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestAnalyticsService_ScopedToUser(t *testing.T) {
	analytics, habits, _ := setupAnalyticsTestEnv(t, "2024-01-15")

	createHabitWithChecks(t, habits, 1, "Mine", "2024-01-15")
	createHabitWithChecks(t, habits, 2, "Theirs", "2024-01-15")

	from := day("2024-01-15")
	to := day("2024-01-15")
	result, err := analytics.Daily(1, DailyInput{From: &from, To: &to, Days: 30, OnlyActive: false})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalHabits)
	require.Equal(t, 1, result.Days[0].Completed)
}
