package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyHabit    = "habit"
)

// Credential bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// Habit field bounds
const (
	MaxHabitNameLength = 60
	MaxTagLength       = 24
	MaxColorLength     = 20
	MaxNotesLength     = 140
	MaxWaterGoalMl     = 20000
	DefaultColor       = "#7c3aed"
)

// Exercise bounds and defaults
const (
	DefaultSets = 3
	DefaultReps = 10
	MaxSets     = 50
	MaxReps     = 200
)

// Analytics window bounds
const (
	DefaultAnalyticsDays = 30
	MaxAnalyticsDays     = 365
)

// Weekdays lists the accepted schedule day labels, in week order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
