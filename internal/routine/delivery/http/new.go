package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/routine"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the routine HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GenerateTask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc routine.UseCase
}

// New creates a new HTTP handler for the routine domain.
func New(l log.Logger, uc routine.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
