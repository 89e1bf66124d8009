package dto

import (
	"time"

	"habitflow/internal/models"
)

// ScheduleDTO represents a habit schedule in API responses
type ScheduleDTO struct {
	Days []string `json:"days"`
	Time string   `json:"time"`
}

// ExerciseDTO represents an exercise entry in API responses
type ExerciseDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  int    `json:"reps"`
	Notes string `json:"notes"`
}

// HabitDTO represents a habit in API responses. Checks render as a
// date→true map and the streak is computed on demand, never stored.
type HabitDTO struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Tag         string          `json:"tag"`
	Color       string          `json:"color"`
	Notes       string          `json:"notes"`
	Schedule    ScheduleDTO     `json:"schedule"`
	Exercises   []ExerciseDTO   `json:"exercises"`
	WaterGoalMl int             `json:"waterGoalMl"`
	Checks      map[string]bool `json:"checks"`
	Streak      int             `json:"streak"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// HabitListResponse wraps the habit collection endpoint body.
type HabitListResponse struct {
	Habits []HabitDTO `json:"habits"`
}

// ToHabitDTO converts a Habit model (with preloaded exercises and checks)
// to a HabitDTO. The streak is supplied by the caller so the conversion
// stays independent of any clock.
func ToHabitDTO(habit models.Habit, streak int) HabitDTO {
	exercises := make([]ExerciseDTO, 0, len(habit.Exercises))
	for _, e := range habit.Exercises {
		exercises = append(exercises, ExerciseDTO{
			ID:    e.ExternalID,
			Name:  e.Name,
			Sets:  e.Sets,
			Reps:  e.Reps,
			Notes: e.Notes,
		})
	}

	return HabitDTO{
		ID:          habit.ID,
		Name:        habit.Name,
		Tag:         habit.Tag,
		Color:       habit.Color,
		Notes:       habit.Notes,
		Schedule:    ScheduleDTO{Days: habit.ScheduleDayList(), Time: habit.ScheduleTime},
		Exercises:   exercises,
		WaterGoalMl: habit.WaterGoalMl,
		Checks:      habit.CheckSet(),
		Streak:      streak,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}
