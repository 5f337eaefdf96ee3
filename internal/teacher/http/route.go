package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, teacherAuth gin.HandlerFunc) {
	group := g.Group("/teachers")

	group.GET("", h.List)
	group.GET("/:username", h.Get)

	// Registration requires an existing directory entry vouching for the
	// request.
	adminGroup := group.Group("")
	adminGroup.Use(teacherAuth)
	{
		adminGroup.POST("", h.Register)
	}
}
