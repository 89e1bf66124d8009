package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"habitflow/internal/constants"
	"habitflow/internal/dto"
	"habitflow/internal/repository"
	"habitflow/internal/utils"
)

var (
	ErrInvalidRange = errors.New("invalid date range")
)

// AnalyticsService aggregates per-day completion counts across a user's
// habits. The clock is injected so window resolution is reproducible.
type AnalyticsService struct {
	habitRepo repository.HabitRepository
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService. A nil clock falls
// back to time.Now.
func NewAnalyticsService(habitRepo repository.HabitRepository, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		habitRepo: habitRepo,
		now:       now,
	}
}

// DailyInput is a resolved analytics query: optional explicit bounds, a
// day count used when bounds are absent, and the active-days-only flag.
type DailyInput struct {
	From       *time.Time
	To         *time.Time
	Days       int
	OnlyActive bool
}

// Daily produces one summary row per calendar day in the window, ascending
// by date. The habit total is constant across the window even for habits
// created mid-window; see DESIGN.md for the rationale.
func (s *AnalyticsService) Daily(userID uint64, input DailyInput) (*dto.DailyAnalytics, error) {
	if input.Days < 1 || input.Days > constants.MaxAnalyticsDays {
		return nil, ErrInvalidRange
	}

	end := utils.DayOf(s.now())
	if input.To != nil {
		end = utils.DayOf(*input.To)
	}
	start := end.AddDate(0, 0, -(input.Days - 1))
	if input.From != nil {
		start = utils.DayOf(*input.From)
	}

	habits, err := s.habitRepo.ListByUser(userID, "Checks")
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	total := len(habits)

	type habitChecks struct {
		id   uint64
		done map[string]bool
	}
	checks := make([]habitChecks, 0, total)
	for i := range habits {
		checks = append(checks, habitChecks{id: habits[i].ID, done: habits[i].CheckSet()})
	}

	rows := make([]dto.DailyRow, 0, input.Days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := utils.FormatDay(day)

		doneIDs := make([]uint64, 0)
		for _, hc := range checks {
			if hc.done[date] {
				doneIDs = append(doneIDs, hc.id)
			}
		}
		sort.Slice(doneIDs, func(i, j int) bool { return doneIDs[i] < doneIDs[j] })

		completed := len(doneIDs)
		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(completed) / float64(total) * 100))
		}

		if input.OnlyActive && completed == 0 {
			continue
		}

		rows = append(rows, dto.DailyRow{
			Date:         date,
			Completed:    completed,
			Total:        total,
			Percent:      percent,
			DoneHabitIDs: doneIDs,
		})
	}

	return &dto.DailyAnalytics{
		From:        utils.FormatDay(start),
		To:          utils.FormatDay(end),
		TotalHabits: total,
		Days:        rows,
	}, nil
}
