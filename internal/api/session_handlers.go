package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourname/focustimer/internal"
	"github.com/yourname/focustimer/internal/service"
	"github.com/yourname/focustimer/internal/storage"
)

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "NoScreen API"})
	}
}

func GetQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"quote": service.RandomQuote()})
	}
}

func StartSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.StartSessionRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateStartSessionRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		session, err := service.StartSession(c.Request.Context(), app.SessionRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to start session")
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func CompleteSession(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.CompleteSessionRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateCompleteSessionRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		duration, err := service.CompleteSession(c.Request.Context(), app.SessionRepo(), app.StatsRepo(), &body)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Session not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to complete session")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Session completed", "duration": duration})
	}
}

func GetHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.DefaultQuery("userId", internal.DefaultUserID)
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil {
			limit = service.DefaultHistoryLimit
		}

		sessions, err := service.ListHistory(c.Request.Context(), app.SessionRepo(), userID, limit)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch history")
			return
		}

		c.JSON(http.StatusOK, sessions)
	}
}

func GetStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.DefaultQuery("userId", internal.DefaultUserID)

		stats, err := service.GetStats(c.Request.Context(), app.StatsRepo(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch stats")
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
