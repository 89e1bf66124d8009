package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habitflow/internal/dto"
	apierrors "habitflow/internal/errors"
	"habitflow/internal/middleware"
	"habitflow/internal/models"
	"habitflow/internal/services"
)

// HabitHandler coordinates habit CRUD and toggle HTTP handlers.
type HabitHandler struct {
	habitService *services.HabitService
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService *services.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

// ScheduleRequest mirrors the schedule replacement payload.
type ScheduleRequest struct {
	Days []string `json:"days"`
	Time string   `json:"time" binding:"omitempty,len=5"`
}

// ExerciseRequest mirrors one exercise entry in an update payload.
type ExerciseRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required,max=60"`
	Sets  *int   `json:"sets" binding:"omitempty,min=1,max=50"`
	Reps  *int   `json:"reps" binding:"omitempty,min=1,max=200"`
	Notes string `json:"notes" binding:"max=140"`
}

// ListHabits returns all habits owned by the caller, newest first.
func (h *HabitHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	habits, err := h.habitService.ListHabits(userID)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HabitListResponse{Habits: h.toDTOs(habits)})
}

// GetHabit returns a single habit. Ownership was already established by
// RequireHabitOwnership; the service reloads with relations.
func (h *HabitHandler) GetHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	habitID, exists := middleware.GetHabitID(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	habit, err := h.habitService.GetHabit(userID, habitID)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": h.toDTO(*habit)})
}

// CreateHabit creates a habit owned by the caller.
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateHabitRequest struct {
		Name  string `json:"name" binding:"required,max=60"`
		Tag   string `json:"tag" binding:"max=24"`
		Color string `json:"color" binding:"max=20"`
		Notes string `json:"notes" binding:"max=140"`
	}

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	habit, err := h.habitService.CreateHabit(services.CreateHabitInput{
		UserID: userID,
		Name:   req.Name,
		Tag:    req.Tag,
		Color:  req.Color,
		Notes:  req.Notes,
	})
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": h.toDTO(*habit)})
}

// UpdateHabit applies a partial update; the exercises list, when present,
// is replaced wholesale rather than merged.
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	habitID, exists := middleware.GetHabitID(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	type UpdateHabitRequest struct {
		Name        *string            `json:"name" binding:"omitempty,max=60"`
		Tag         *string            `json:"tag" binding:"omitempty,max=24"`
		Color       *string            `json:"color" binding:"omitempty,max=20"`
		Notes       *string            `json:"notes" binding:"omitempty,max=140"`
		Schedule    *ScheduleRequest   `json:"schedule"`
		Exercises   *[]ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
		WaterGoalMl *int               `json:"waterGoalMl" binding:"omitempty,min=0,max=20000"`
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	input := services.UpdateHabitInput{
		Name:        req.Name,
		Tag:         req.Tag,
		Color:       req.Color,
		Notes:       req.Notes,
		WaterGoalMl: req.WaterGoalMl,
	}
	if req.Schedule != nil {
		input.Schedule = &services.ScheduleInput{
			Days: req.Schedule.Days,
			Time: req.Schedule.Time,
		}
	}
	if req.Exercises != nil {
		exercises := make([]services.ExerciseInput, 0, len(*req.Exercises))
		for _, e := range *req.Exercises {
			exercises = append(exercises, services.ExerciseInput{
				ID:    e.ID,
				Name:  e.Name,
				Sets:  e.Sets,
				Reps:  e.Reps,
				Notes: e.Notes,
			})
		}
		input.Exercises = &exercises
	}

	habit, err := h.habitService.UpdateHabit(userID, habitID, input)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": h.toDTO(*habit)})
}

// DeleteHabit removes a habit owned by the caller.
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	habitID, exists := middleware.GetHabitID(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	if err := h.habitService.DeleteHabit(userID, habitID); err != nil {
		respondHabitError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleCheck sets or clears one date's done mark. The date defaults to
// today when omitted.
func (h *HabitHandler) ToggleCheck(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	habitID, exists := middleware.GetHabitID(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	// An absent done field clears the check, matching the wire contract
	// where done is coerced to false when omitted.
	type ToggleRequest struct {
		Date string `json:"date"`
		Done bool   `json:"done"`
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	habit, err := h.habitService.ToggleCheck(userID, habitID, req.Date, req.Done)
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": h.toDTO(*habit)})
}

func (h *HabitHandler) toDTO(habit models.Habit) dto.HabitDTO {
	today := h.habitService.Today()
	return dto.ToHabitDTO(habit, services.Streak(habit.CheckSet(), today))
}

func (h *HabitHandler) toDTOs(habits []models.Habit) []dto.HabitDTO {
	today := h.habitService.Today()
	dtos := make([]dto.HabitDTO, 0, len(habits))
	for _, habit := range habits {
		dtos = append(dtos, dto.ToHabitDTO(habit, services.Streak(habit.CheckSet(), today)))
	}
	return dtos
}

func respondHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		apierrors.NotFound(c, "")
	case errors.Is(err, services.ErrHabitNameMissing),
		errors.Is(err, services.ErrInvalidSchedule),
		errors.Is(err, services.ErrInvalidExercise),
		errors.Is(err, services.ErrInvalidDate):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
