package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	authUC "task-scheduler/internal/auth/usecase"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	dateParser *datemath.Parser

	// Domain settings
	google       authUC.GoogleConfig
	ciReportsDir string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager scope.Manager
	DateParser *datemath.Parser

	Google authUC.GoogleConfig

	CIReportsDir string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		postgresDB:   cfg.PostgresDB,
		jwtManager:   cfg.JWTManager,
		dateParser:   cfg.DateParser,
		google:       cfg.Google,
		ciReportsDir: cfg.CIReportsDir,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
