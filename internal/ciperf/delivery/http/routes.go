package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the CI performance report endpoints. They serve
// aggregate build metrics only, so no session is required.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	ci := rg.Group("/ci-performance")
	{
		ci.GET("/summary", h.Summary)
		ci.GET("/detailed", h.Detailed)
	}
}
