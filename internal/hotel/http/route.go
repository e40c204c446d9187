package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/hotels")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/by-ids", h.GetMany)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	group.POST("/:id/rate", authMiddleware, h.Rate)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Patch)
		admin.PATCH("", h.PatchMany)
		admin.DELETE("/:id", h.Delete)
		admin.DELETE("", h.DeleteMany)
	}
}
