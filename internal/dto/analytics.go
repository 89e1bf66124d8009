package dto

// DailyRow is the aggregated completion summary for one calendar date.
type DailyRow struct {
	Date         string   `json:"date"`
	Completed    int      `json:"completed"`
	Total        int      `json:"total"`
	Percent      int      `json:"percent"`
	DoneHabitIDs []uint64 `json:"doneHabitIds"`
}

// DailyAnalytics is the body of the daily analytics endpoint: the resolved
// window plus one row per day, ascending by date.
type DailyAnalytics struct {
	From        string     `json:"from"`
	To          string     `json:"to"`
	TotalHabits int        `json:"totalHabits"`
	Days        []DailyRow `json:"days"`
}
