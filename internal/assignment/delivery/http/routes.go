package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the assignment endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/assignments")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/classes", h.Classes)
		items.GET("/workload", h.Workload)
		items.GET("/events", h.Events)
		items.POST("/calendar-export", h.ExportCalendar)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/complete", h.Complete)
	}
}
