package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routine routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	routines := rg.Group("/routines")
	{
		routines.POST("", mw.Auth(), h.Create)
		routines.GET("", mw.Auth(), h.List)
		routines.GET("/:id", mw.Auth(), h.Detail)
		routines.PUT("/:id", mw.Auth(), h.Update)
		routines.DELETE("/:id", mw.Auth(), h.Delete)

		routines.POST("/:id/generate-task", mw.Auth(), h.GenerateTask)
	}
}
