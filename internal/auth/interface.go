package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (SessionOutput, error)
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)

	// GoogleAuthURL returns the consent page URL to redirect the user to.
	GoogleAuthURL(state string) string
	// GoogleCallback exchanges the authorization code, fetches the Google
	// profile and signs the user in, creating the account on first sign-in.
	GoogleCallback(ctx context.Context, input GoogleCallbackInput) (SessionOutput, error)

	Me(ctx context.Context, userID string) (UserOutput, error)
	Logout(token string)
}
