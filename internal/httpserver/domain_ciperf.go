package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/ciperf"
	ciperfHTTP "task-scheduler/internal/ciperf/delivery/http"
)

// setupCIPerfDomain registers the CI performance report endpoints.
// Reports are produced offline by cmd/ciperf; the handler only reads
// what the store has on disk.
func (srv HTTPServer) setupCIPerfDomain(ctx context.Context, api *gin.RouterGroup) error {
	store := ciperf.NewStore(srv.ciReportsDir)

	h := ciperfHTTP.New(srv.l, store)

	// Routes: registers /api/v1/ci-performance
	ciperfHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "CI performance domain registered")
	return nil
}
