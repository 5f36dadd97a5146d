package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	taskHTTP "task-scheduler/internal/task/delivery/http"
	taskRepo "task-scheduler/internal/task/repository/postgre"
	taskUC "task-scheduler/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern for every domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := taskUC.New(repo, srv.dateParser, srv.l)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
