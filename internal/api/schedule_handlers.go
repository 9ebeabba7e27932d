package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/service"
	"github.com/yourname/focustimer/internal/storage"
)

func PostSchedule(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.ScheduleRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateScheduleRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		schedule, err := service.CreateSchedule(c.Request.Context(), app.ScheduleRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save schedule")
			return
		}

		c.JSON(http.StatusOK, schedule)
	}
}

func GetSchedules(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.DefaultQuery("userId", internal.DefaultUserID)

		schedules, err := service.ListSchedules(c.Request.Context(), app.ScheduleRepo(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch schedules")
			return
		}

		c.JSON(http.StatusOK, schedules)
	}
}

func DeleteSchedule(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := service.DeleteSchedule(c.Request.Context(), app.ScheduleRepo(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Schedule not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to delete schedule")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
	}
}

func ToggleSchedule(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		enabled, err := service.ToggleSchedule(c.Request.Context(), app.ScheduleRepo(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Schedule not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to toggle schedule")
			return
		}

		c.JSON(http.StatusOK, gin.H{"enabled": enabled})
	}
}
