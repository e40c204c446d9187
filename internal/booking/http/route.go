package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.POST("", authMiddleware, h.Create)
	group.GET("/me", authMiddleware, h.ListMine)
	group.GET("/:id", authMiddleware, h.Get)

	// === Admin Routes ===
	group.GET("", authMiddleware, adminMiddleware, h.List)
}
