package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes, including auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	// === Authenticated Routes ===
	g.GET("/me", authMiddleware, h.Me)

	// === Admin Routes ===
	users := g.Group("/users")
	users.Use(authMiddleware, adminMiddleware)
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PATCH("/:id", h.Patch)
		users.DELETE("/:id", h.Delete)
	}
}
