package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Habit struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"type:varchar(60);not null" json:"name"`
	Tag    string `gorm:"type:varchar(24)" json:"tag"`
	Color  string `gorm:"type:varchar(20);default:'#7c3aed'" json:"color"`
	Notes  string `gorm:"type:varchar(140)" json:"notes"`

	// Schedule days are stored comma-joined ("Mon,Wed,Fri"); time is "HH:MM" or empty.
	ScheduleDays string `gorm:"type:varchar(32)" json:"schedule_days"`
	ScheduleTime string `gorm:"type:varchar(5)" json:"schedule_time"`

	WaterGoalMl int            `json:"water_goal_ml"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Exercises []Exercise   `gorm:"foreignKey:HabitID" json:"exercises,omitempty"`
	Checks    []HabitCheck `gorm:"foreignKey:HabitID" json:"checks,omitempty"`
}

// ScheduleDayList splits the stored schedule days into a slice.
func (h *Habit) ScheduleDayList() []string {
	if h.ScheduleDays == "" {
		return []string{}
	}
	return strings.Split(h.ScheduleDays, ",")
}

// SetScheduleDays stores a day-label slice in the comma-joined column form.
func (h *Habit) SetScheduleDays(days []string) {
	h.ScheduleDays = strings.Join(days, ",")
}

// CheckSet builds the done-date set from the loaded check rows.
// A date is done iff it has a row; false is never stored.
func (h *Habit) CheckSet() map[string]bool {
	set := make(map[string]bool, len(h.Checks))
	for _, c := range h.Checks {
		set[c.Date] = true
	}
	return set
}
