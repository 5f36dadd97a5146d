package usecase

import (
	"context"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"task-scheduler/internal/auth"
	repo "task-scheduler/internal/auth/repository"
)

// GoogleAuthURL returns the Google consent page URL for the given state.
func (uc *implUseCase) GoogleAuthURL(state string) string {
	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// GoogleCallback exchanges the authorization code for a token, reads the
// Google profile and signs the user in. The account is created on first
// sign-in, with no password set.
func (uc *implUseCase) GoogleCallback(ctx context.Context, input auth.GoogleCallbackInput) (auth.SessionOutput, error) {
	if input.Code == "" {
		return auth.SessionOutput{}, auth.ErrOAuthExchange
	}

	token, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "uc.GoogleCallback Exchange: %v", err)
		return auth.SessionOutput{}, auth.ErrOAuthExchange
	}

	info, err := uc.fetchUserinfo(ctx, token)
	if err != nil {
		uc.l.Warnf(ctx, "uc.GoogleCallback Userinfo: %v", err)
		return auth.SessionOutput{}, auth.ErrOAuthExchange
	}
	email := normalizeEmail(info.Email)
	if email == "" {
		return auth.SessionOutput{}, auth.ErrOAuthExchange
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleCallback GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if user.ID == "" {
		user, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Email: email,
			Name:  info.Name,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleCallback CreateUser: %v", err)
			return auth.SessionOutput{}, err
		}
	}

	return uc.newSession(ctx, user)
}

func (uc *implUseCase) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(uc.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}
	return svc.Userinfo.Get().Context(ctx).Do()
}
