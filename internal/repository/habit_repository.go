package repository

import (
	"habitflow/internal/database"
	"habitflow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHabitRepository is a GORM implementation of HabitRepository
type GormHabitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new HabitRepository
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &GormHabitRepository{db: db}
}

// Create creates a new habit
func (r *GormHabitRepository) Create(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

// FindByIDForUser finds a habit owned by the user, with optional preloading
func (r *GormHabitRepository) FindByIDForUser(id, userID uint64, preload ...string) (*models.Habit, error) {
	var habit models.Habit
	query := r.db.Scopes(database.OwnedBy(userID))

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&habit, id).Error; err != nil {
		return nil, err
	}

	return &habit, nil
}

// ListByUser lists the user's habits, newest first, with optional preloading
func (r *GormHabitRepository) ListByUser(userID uint64, preload ...string) ([]models.Habit, error) {
	var habits []models.Habit
	query := r.db.Scopes(database.OwnedBy(userID)).Order("created_at DESC")

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Find(&habits).Error; err != nil {
		return nil, err
	}

	return habits, nil
}

// Update persists changes to a habit
func (r *GormHabitRepository) Update(habit *models.Habit) error {
	return r.db.Save(habit).Error
}

// ReplaceExercises replaces a habit's exercise list wholesale
func (r *GormHabitRepository) ReplaceExercises(habitID uint64, exercises []models.Exercise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}

		if len(exercises) == 0 {
			return nil
		}

		for i := range exercises {
			exercises[i].ID = 0
			exercises[i].HabitID = habitID
			exercises[i].Position = i
		}

		return tx.Create(&exercises).Error
	})
}

// Delete removes a habit owned by the user together with its checks and exercises
func (r *GormHabitRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(database.OwnedBy(userID)).Delete(&models.Habit{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("habit_id = ?", id).Delete(&models.HabitCheck{}).Error; err != nil {
			return err
		}

		return tx.Where("habit_id = ?", id).Delete(&models.Exercise{}).Error
	})
}

// SetCheck marks a date as done. The insert is idempotent so concurrent
// toggles on the same key collapse to a single row.
func (r *GormHabitRepository) SetCheck(habitID uint64, date string) error {
	check := models.HabitCheck{HabitID: habitID, Date: date}
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&check).Error
}

// ClearCheck unmarks a date; removing an absent check is a no-op
func (r *GormHabitRepository) ClearCheck(habitID uint64, date string) error {
	return r.db.Where("habit_id = ? AND date = ?", habitID, date).
		Delete(&models.HabitCheck{}).Error
}
