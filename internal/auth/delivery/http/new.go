package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/auth"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GoogleURL(c *gin.Context)
	GoogleCallback(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
