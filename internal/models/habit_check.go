package models

import "time"

// HabitCheck marks a habit as completed on one calendar date.
// Presence of a row means done; unmarking deletes the row, so a false
// value can never be persisted.
type HabitCheck struct {
	HabitID   uint64    `gorm:"primarykey" json:"habit_id"`
	Date      string    `gorm:"primarykey;type:varchar(10)" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
