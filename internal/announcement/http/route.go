package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, teacherAuth gin.HandlerFunc) {
	group := g.Group("/announcements")

	// Active listing is the public student-facing surface.
	group.GET("", h.ListActive)

	// === Teacher Routes (directory-gated) ===
	teacherGroup := group.Group("")
	teacherGroup.Use(teacherAuth)
	{
		teacherGroup.GET("/all", h.ListAll)
		teacherGroup.POST("", h.Create)
		teacherGroup.PUT("/:id", h.Update)
		teacherGroup.DELETE("/:id", h.Delete)
	}
}
