package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	routineHTTP "task-scheduler/internal/routine/delivery/http"
	routineRepo "task-scheduler/internal/routine/repository/postgre"
	routineUC "task-scheduler/internal/routine/usecase"
	taskRepo "task-scheduler/internal/task/repository/postgre"
)

// setupRoutineDomain initializes the routine domain and registers its routes.
// The usecase also takes the task repository so generated tasks go through
// the same persistence path, duplicate backstop included.
func (srv HTTPServer) setupRoutineDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	repo := routineRepo.New(srv.postgresDB, srv.l)
	tasks := taskRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := routineUC.New(repo, tasks, srv.l)

	// 3. HTTP Handler
	h := routineHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/routines
	routineHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Routine domain registered")
	return nil
}
