package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "task-scheduler/internal/auth/delivery/http"
	authRepo "task-scheduler/internal/auth/repository/postgre"
	authUC "task-scheduler/internal/auth/usecase"
	"task-scheduler/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := authRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := authUC.New(repo, srv.jwtManager, srv.google, srv.l)

	// 3. HTTP Handler
	h := authHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
