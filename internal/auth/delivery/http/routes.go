package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/google/url", h.GoogleURL)
		authGroup.POST("/google/callback", h.GoogleCallback)

		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
	}
}
