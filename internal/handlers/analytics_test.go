package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"habitflow/internal/dto"
	"habitflow/internal/middleware"
	"habitflow/internal/repository"
	"habitflow/internal/services"
)

type analyticsTestEnv struct {
	habitTestEnv
	analyticsHandler *AnalyticsHandler
	habitService     *services.HabitService
}

func setupAnalyticsHandlerEnv(t *testing.T) analyticsTestEnv {
	t.Helper()

	base := setupHabitTestEnv(t)
	clock := func() time.Time {
		today, err := time.Parse("2006-01-02", habitTestToday)
		require.NoError(t, err)
		return today
	}
	habitRepo := repository.NewHabitRepository(base.db)
	analyticsService := services.NewAnalyticsService(habitRepo, clock)

	return analyticsTestEnv{
		habitTestEnv:     base,
		analyticsHandler: NewAnalyticsHandler(analyticsService),
		habitService:     base.habitService,
	}
}

func (env analyticsTestEnv) analyticsRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/analytics/daily", middleware.RequireAuth(env.tokens), env.analyticsHandler.GetDaily)
	return r
}

func TestAnalyticsHandler_Daily(t *testing.T) {
	env := setupAnalyticsHandlerEnv(t)
	r := env.analyticsRouter()
	userID, token := env.registerUser(t, "tracker")

	habit, err := env.habitService.CreateHabit(services.CreateHabitInput{UserID: userID, Name: "Run"})
	require.NoError(t, err)
	_, err = env.habitService.ToggleCheck(userID, habit.ID, "2024-01-14", true)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/analytics/daily?from=2024-01-14&to=2024-01-15&onlyActive=false", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.DailyAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, "2024-01-14", result.From)
	require.Equal(t, "2024-01-15", result.To)
	require.Equal(t, 1, result.TotalHabits)
	require.Len(t, result.Days, 2)
	require.Equal(t, 1, result.Days[0].Completed)
	require.Equal(t, 100, result.Days[0].Percent)
	require.Equal(t, []uint64{habit.ID}, result.Days[0].DoneHabitIDs)
	require.Equal(t, 0, result.Days[1].Completed)
}

func TestAnalyticsHandler_DefaultsSkipEmptyDays(t *testing.T) {
	env := setupAnalyticsHandlerEnv(t)
	r := env.analyticsRouter()
	userID, token := env.registerUser(t, "lazy_tracker")

	habit, err := env.habitService.CreateHabit(services.CreateHabitInput{UserID: userID, Name: "Read"})
	require.NoError(t, err)
	_, err = env.habitService.ToggleCheck(userID, habit.ID, "2024-01-10", true)
	require.NoError(t, err)

	// No query params: last 30 days ending today, active days only
	w := doJSON(t, r, http.MethodGet, "/api/analytics/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.DailyAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, habitTestToday, result.To)
	require.Len(t, result.Days, 1)
	require.Equal(t, "2024-01-10", result.Days[0].Date)
}

func TestAnalyticsHandler_RejectsBadParams(t *testing.T) {
	env := setupAnalyticsHandlerEnv(t)
	r := env.analyticsRouter()
	_, token := env.registerUser(t, "fuzzer")

	paths := []string{
		"/api/analytics/daily?days=abc",
		"/api/analytics/daily?days=0",
		"/api/analytics/daily?days=366",
		"/api/analytics/daily?from=15-01-2024",
		"/api/analytics/daily?to=notaday",
		"/api/analytics/daily?onlyActive=maybe",
	}
	for _, path := range paths {
		w := doJSON(t, r, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, "path %q should be rejected", path)
	}
}

func TestAnalyticsHandler_RequiresAuth(t *testing.T) {
	env := setupAnalyticsHandlerEnv(t)
	r := env.analyticsRouter()

	w := doJSON(t, r, http.MethodGet, "/api/analytics/daily", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
