package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zhiren/talenthub/internal/api/handlers"
	"github.com/zhiren/talenthub/internal/api/middleware"
)

type Deps struct {
	Candidate    *handlers.CandidateHandler
	Interview    *handlers.InterviewHandler
	Application  *handlers.ApplicationHandler
	Notification *handlers.NotificationHandler
	Office       *handlers.OfficeHandler
	WS           *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	api := r.Group("/api/hr")
	api.Use(middleware.JWTAuth(), middleware.RequireHR())

	api.GET("/candidates", d.Candidate.List)
	api.POST("/candidates", d.Candidate.Create)
	api.PUT("/candidates", d.Candidate.BulkUpdate)
	api.POST("/candidates/:id/resume", d.Candidate.UploadResume)

	api.GET("/interviews", d.Interview.List)
	api.POST("/interviews", d.Interview.Create)
	api.POST("/interviews/suggest", d.Interview.Suggest)
	api.PUT("/interviews/:id", d.Interview.Update)
	api.DELETE("/interviews/:id", d.Interview.Delete)

	api.GET("/applications", d.Application.List)
	api.PUT("/applications/:id/status", d.Application.SetStatus)

	api.GET("/notifications", d.Notification.List)
	api.PUT("/notifications/read-all", d.Notification.MarkAllRead)
	api.PUT("/notifications/:id/read", d.Notification.MarkRead)

	api.GET("/offices", d.Office.List)
	api.POST("/offices", d.Office.Create)
	api.PUT("/offices/:id", d.Office.Update)
	api.DELETE("/offices/:id", d.Office.Delete)

	// WebSocket
	api.GET("/ws/notifications", d.WS.NotificationsWS)
}
