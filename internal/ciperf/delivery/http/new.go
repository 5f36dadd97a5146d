package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/ciperf"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the CI performance HTTP delivery layer.
type Handler interface {
	Summary(c *gin.Context)
	Detailed(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store *ciperf.Store
}

// New creates a new HTTP handler serving CI performance reports.
func New(l log.Logger, store *ciperf.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
