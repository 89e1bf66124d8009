package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreak_NoChecks(t *testing.T) {
	require.Equal(t, 0, Streak(map[string]bool{}, day("2024-01-10")))
	require.Equal(t, 0, Streak(nil, day("2024-01-10")))
}

func TestStreak_TodayUnchecked(t *testing.T) {
	done := map[string]bool{
		"2024-01-08": true,
		"2024-01-09": true,
	}
	require.Equal(t, 0, Streak(done, day("2024-01-10")))
}

func TestStreak_ExactlyN(t *testing.T) {
	// Today and the prior 4 consecutive days, nothing before: streak is 5.
	done := map[string]bool{
		"2024-01-06": true,
		"2024-01-07": true,
		"2024-01-08": true,
		"2024-01-09": true,
		"2024-01-10": true,
	}
	require.Equal(t, 5, Streak(done, day("2024-01-10")))
}

func TestStreak_StopsAtGap(t *testing.T) {
	done := map[string]bool{
		"2024-01-10": true,
		"2024-01-09": true,
		// gap on 2024-01-08
		"2024-01-07": true,
		"2024-01-06": true,
	}
	require.Equal(t, 2, Streak(done, day("2024-01-10")))
}

func TestStreak_CrossesMonthBoundary(t *testing.T) {
	done := map[string]bool{
		"2024-02-29": true,
		"2024-03-01": true,
	}
	require.Equal(t, 2, Streak(done, day("2024-03-01")))
}

func TestStreak_IgnoresFutureChecks(t *testing.T) {
	done := map[string]bool{
		"2024-01-10": true,
		"2024-01-11": true,
	}
	require.Equal(t, 1, Streak(done, day("2024-01-10")))
}
