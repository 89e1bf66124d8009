package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"habitflow/internal/constants"
	"habitflow/internal/database"
	apierrors "habitflow/internal/errors"
	"habitflow/internal/models"
)

// RequireHabitOwnership loads the habit addressed by the :id parameter,
// scoped to the authenticated user. A habit that does not exist and a
// habit owned by someone else both answer 404, so ownership never leaks.
func RequireHabitOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		habitID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var habit models.Habit
		if err := database.GetDB().
			Where("user_id = ?", userID).
			First(&habit, habitID).Error; err != nil {
			apierrors.NotFound(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyHabit, habit)
		c.Next()
	}
}

// GetHabitID retrieves the habit loaded by RequireHabitOwnership.
func GetHabitID(c *gin.Context) (uint64, bool) {
	habit, exists := c.Get(constants.ContextKeyHabit)
	if !exists {
		return 0, false
	}

	h, ok := habit.(models.Habit)
	if !ok {
		return 0, false
	}
	return h.ID, true
}
