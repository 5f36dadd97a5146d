package usecase

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"task-scheduler/internal/auth/repository"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/scope"
)

// GoogleConfig holds the OAuth client settings for Google sign-in.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	oauth      *oauth2.Config
	l          log.Logger
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, google GoogleConfig, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		oauth:      newGoogleOAuthConfig(google),
		l:          l,
	}
}

func newGoogleOAuthConfig(cfg GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
