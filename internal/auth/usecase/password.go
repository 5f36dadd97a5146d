package usecase

import (
	"context"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"task-scheduler/internal/auth"
	repo "task-scheduler/internal/auth/repository"
	"task-scheduler/internal/model"
	"task-scheduler/pkg/scope"
)

const minPasswordLength = 8

// normalizeEmail folds an email to its canonical stored form. Lookups and
// inserts always go through this so casing and stray whitespace cannot split
// one mailbox into two accounts.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a password-based account and signs the user in.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.SessionOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return auth.SessionOutput{}, auth.ErrMissingField
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return auth.SessionOutput{}, auth.ErrMissingField
	}
	if len(input.Password) < minPasswordLength {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if existing.ID != "" {
		return auth.SessionOutput{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return auth.SessionOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
	})
	if err == repo.ErrDuplicateEmail {
		return auth.SessionOutput{}, auth.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.SessionOutput{}, err
	}

	return uc.newSession(ctx, user)
}

// Login verifies a password login. A wrong email and a wrong password are
// indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return auth.SessionOutput{}, auth.ErrMissingField
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if user.ID == "" || user.PasswordHash == "" {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}

	return uc.newSession(ctx, user)
}

// Me returns the authenticated user's profile.
func (uc *implUseCase) Me(ctx context.Context, userID string) (auth.UserOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.UserOutput{}, err
	}
	if user.ID == "" {
		return auth.UserOutput{}, auth.ErrUserNotFound
	}
	return auth.UserOutput{User: user}, nil
}

// Logout revokes the session token.
func (uc *implUseCase) Logout(token string) {
	uc.jwtManager.Revoke(token)
}

func (uc *implUseCase) newSession(ctx context.Context, user model.User) (auth.SessionOutput, error) {
	token, err := uc.jwtManager.IssueToken(scope.Payload{UserID: user.ID, Email: user.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.newSession IssueToken: %v", err)
		return auth.SessionOutput{}, err
	}
	return auth.SessionOutput{User: user, Token: token}, nil
}
