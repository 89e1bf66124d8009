package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"habitflow/internal/constants"
	"habitflow/internal/models"
	"habitflow/internal/repository"
	"habitflow/internal/utils"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrHabitNameMissing = errors.New("name is required")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrInvalidExercise  = errors.New("invalid exercise")
	ErrInvalidDate      = errors.New("invalid date")
)

var scheduleTimePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// HabitService handles habit business logic. The clock is injected so the
// default toggle date and streaks are reproducible in tests.
type HabitService struct {
	habitRepo repository.HabitRepository
	now       func() time.Time
}

// NewHabitService creates a new HabitService. A nil clock falls back to
// time.Now.
func NewHabitService(habitRepo repository.HabitRepository, now func() time.Time) *HabitService {
	if now == nil {
		now = time.Now
	}
	return &HabitService{
		habitRepo: habitRepo,
		now:       now,
	}
}

// Today returns the current reference date for streaks and default toggles.
func (s *HabitService) Today() time.Time {
	return utils.DayOf(s.now())
}

// CreateHabitInput represents input for creating a habit
type CreateHabitInput struct {
	UserID uint64
	Name   string
	Tag    string
	Color  string
	Notes  string
}

// ScheduleInput carries a full replacement schedule.
type ScheduleInput struct {
	Days []string
	Time string
}

// ExerciseInput carries one exercise entry; sets/reps fall back to their
// defaults when absent.
type ExerciseInput struct {
	ID    string
	Name  string
	Sets  *int
	Reps  *int
	Notes string
}

// UpdateHabitInput represents a partial habit update. Nil fields are left
// untouched; a non-nil exercises slice replaces the list wholesale.
type UpdateHabitInput struct {
	Name        *string
	Tag         *string
	Color       *string
	Notes       *string
	Schedule    *ScheduleInput
	Exercises   *[]ExerciseInput
	WaterGoalMl *int
}

// ListHabits returns the user's habits, newest first, with exercises and
// checks loaded.
func (s *HabitService) ListHabits(userID uint64) ([]models.Habit, error) {
	habits, err := s.habitRepo.ListByUser(userID, "Exercises", "Checks")
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	for i := range habits {
		orderExercises(&habits[i])
	}

	return habits, nil
}

// GetHabit returns one habit owned by the user with related data.
func (s *HabitService) GetHabit(userID, habitID uint64) (*models.Habit, error) {
	habit, err := s.habitRepo.FindByIDForUser(habitID, userID, "Exercises", "Checks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	orderExercises(habit)
	return habit, nil
}

// CreateHabit creates a new habit owned by the user.
func (s *HabitService) CreateHabit(input CreateHabitInput) (*models.Habit, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrHabitNameMissing
	}

	color := input.Color
	if color == "" {
		color = constants.DefaultColor
	}

	habit := &models.Habit{
		UserID: input.UserID,
		Name:   name,
		Tag:    input.Tag,
		Color:  color,
		Notes:  input.Notes,
	}

	if err := s.habitRepo.Create(habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return s.GetHabit(input.UserID, habit.ID)
}

// UpdateHabit applies a partial update to a habit owned by the user.
func (s *HabitService) UpdateHabit(userID, habitID uint64, input UpdateHabitInput) (*models.Habit, error) {
	habit, err := s.habitRepo.FindByIDForUser(habitID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrHabitNameMissing
		}
		habit.Name = name
	}
	if input.Tag != nil {
		habit.Tag = *input.Tag
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}
	if input.Notes != nil {
		habit.Notes = *input.Notes
	}
	if input.WaterGoalMl != nil {
		habit.WaterGoalMl = *input.WaterGoalMl
	}
	if input.Schedule != nil {
		days, err := normalizeScheduleDays(input.Schedule.Days)
		if err != nil {
			return nil, err
		}
		if input.Schedule.Time != "" && !scheduleTimePattern.MatchString(input.Schedule.Time) {
			return nil, ErrInvalidSchedule
		}
		habit.SetScheduleDays(days)
		habit.ScheduleTime = input.Schedule.Time
	}

	// Validate the full payload before writing anything, so a rejected
	// update never leaves a partial mutation behind.
	var exercises []models.Exercise
	if input.Exercises != nil {
		exercises, err = buildExercises(*input.Exercises)
		if err != nil {
			return nil, err
		}
	}

	if err := s.habitRepo.Update(habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	if input.Exercises != nil {
		if err := s.habitRepo.ReplaceExercises(habit.ID, exercises); err != nil {
			return nil, fmt.Errorf("failed to replace exercises: %w", err)
		}
	}

	return s.GetHabit(userID, habitID)
}

// DeleteHabit removes a habit owned by the user. A habit owned by someone
// else reports not-found, never leaking existence.
func (s *HabitService) DeleteHabit(userID, habitID uint64) error {
	if err := s.habitRepo.Delete(habitID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}

// ToggleCheck sets or clears the done mark for one date and returns the
// refreshed habit. An empty date means today. Both directions are
// idempotent: set inserts at most one row, clear removes at most one.
func (s *HabitService) ToggleCheck(userID, habitID uint64, date string, done bool) (*models.Habit, error) {
	if date == "" {
		date = utils.FormatDay(s.Today())
	} else if _, err := utils.ParseDay(date); err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.habitRepo.FindByIDForUser(habitID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	if done {
		if err := s.habitRepo.SetCheck(habitID, date); err != nil {
			return nil, fmt.Errorf("failed to set check: %w", err)
		}
	} else {
		if err := s.habitRepo.ClearCheck(habitID, date); err != nil {
			return nil, fmt.Errorf("failed to clear check: %w", err)
		}
	}

	return s.GetHabit(userID, habitID)
}

func normalizeScheduleDays(days []string) ([]string, error) {
	allowed := make(map[string]bool, len(constants.Weekdays))
	for _, d := range constants.Weekdays {
		allowed[d] = true
	}

	seen := make(map[string]bool, len(days))
	normalized := make([]string, 0, len(days))
	for _, d := range days {
		if !allowed[d] {
			return nil, ErrInvalidSchedule
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		normalized = append(normalized, d)
	}
	return normalized, nil
}

func buildExercises(inputs []ExerciseInput) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if in.ID == "" || name == "" {
			return nil, ErrInvalidExercise
		}

		sets := constants.DefaultSets
		if in.Sets != nil {
			sets = *in.Sets
		}
		reps := constants.DefaultReps
		if in.Reps != nil {
			reps = *in.Reps
		}
		if sets < 1 || sets > constants.MaxSets || reps < 1 || reps > constants.MaxReps {
			return nil, ErrInvalidExercise
		}

		exercises = append(exercises, models.Exercise{
			ExternalID: in.ID,
			Name:       name,
			Sets:       sets,
			Reps:       reps,
			Notes:      in.Notes,
		})
	}
	return exercises, nil
}

func orderExercises(habit *models.Habit) {
	sort.Slice(habit.Exercises, func(i, j int) bool {
		return habit.Exercises[i].Position < habit.Exercises[j].Position
	})
}
