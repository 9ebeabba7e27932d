package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, app App) {
	api := r.Group("/api")
	api.GET("/", Root())
	api.GET("/quotes", GetQuote())
	api.POST("/sessions/start", StartSession(app))
	api.POST("/sessions/complete", CompleteSession(app))
	api.GET("/sessions/history", GetHistory(app))
	api.GET("/stats", GetStats(app))
	api.POST("/schedules", PostSchedule(app))
	api.GET("/schedules", GetSchedules(app))
	api.DELETE("/schedules/:id", DeleteSchedule(app))
	api.PATCH("/schedules/:id/toggle", ToggleSchedule(app))
}
