package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/rooms/:id/photos", h.ListByRoom)
	g.GET("/photos/:id", h.Serve)
	g.GET("/photos/:id/thumbnail", h.ServeThumbnail)

	// === Admin Routes ===
	g.POST("/rooms/:id/photos", authMiddleware, adminMiddleware, h.Upload)
	g.DELETE("/photos/:id", authMiddleware, adminMiddleware, h.Delete)
}
