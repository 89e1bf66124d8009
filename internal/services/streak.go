package services

import (
	"time"

	"habitflow/internal/utils"
)

// Streak counts consecutive done days ending at (and including) today,
// walking one calendar day backward at a time and stopping at the first
// missing date. An unchecked today yields 0. The reference date is a
// parameter so the computation stays pure.
func Streak(done map[string]bool, today time.Time) int {
	day := utils.DayOf(today)
	streak := 0
	for done[utils.FormatDay(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
