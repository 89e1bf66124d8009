package repository

import (
	"habitflow/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error
}

// HabitRepository defines the interface for habit data access.
// Every lookup and mutation is scoped by the owning user so that a habit
// belonging to someone else behaves exactly like a missing one.
type HabitRepository interface {
	// Create creates a new habit
	Create(habit *models.Habit) error

	// FindByIDForUser finds a habit owned by the user, with optional preloading
	FindByIDForUser(id, userID uint64, preload ...string) (*models.Habit, error)

	// ListByUser lists the user's habits, newest first, with optional preloading
	ListByUser(userID uint64, preload ...string) ([]models.Habit, error)

	// Update persists changes to a habit
	Update(habit *models.Habit) error

	// ReplaceExercises replaces a habit's exercise list wholesale
	ReplaceExercises(habitID uint64, exercises []models.Exercise) error

	// Delete removes a habit owned by the user together with its checks
	// and exercises; returns gorm.ErrRecordNotFound when nothing matched
	Delete(id, userID uint64) error

	// SetCheck marks a date as done (idempotent insert)
	SetCheck(habitID uint64, date string) error

	// ClearCheck unmarks a date; removing an absent check is a no-op
	ClearCheck(habitID uint64, date string) error
}
