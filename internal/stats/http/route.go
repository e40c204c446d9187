package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/statistics")
	group.Use(authMiddleware, adminMiddleware)

	group.GET("", h.List)
	group.GET("/export", h.Export)
}
