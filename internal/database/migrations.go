package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database.
// Only meaningful on PostgreSQL; the existence check queries pg_indexes.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Habit indexes for owner scoping and newest-first listing
		{"habits", "idx_habits_user_id", "user_id"},
		{"habits", "idx_habits_created_at", "created_at"},

		// Check lookups by habit and by date (analytics range scans)
		{"habit_checks", "idx_habit_checks_habit_id", "habit_id"},
		{"habit_checks", "idx_habit_checks_date", "date"},

		// Exercise lookups by owning habit
		{"exercises", "idx_exercises_habit_id", "habit_id"},

		// Username lookups at login
		{"users", "idx_users_username", "username"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
