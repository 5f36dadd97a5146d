package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"task-scheduler/internal/auth"
	repo "task-scheduler/internal/auth/repository"
	"task-scheduler/internal/model"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/scope"
)

// memoryRepo is an in-memory repository.Repository used by the tests.
type memoryRepo struct {
	users  map[string]model.User
	nextID int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]model.User)}
}

func (m *memoryRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	email := strings.ToLower(opt.Email)
	for _, u := range m.users {
		if u.Email == email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	m.nextID++
	u := model.User{
		ID:           fmt.Sprintf("user-%d", m.nextID),
		Email:        email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memoryRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	for _, u := range m.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != strings.ToLower(opt.Email) {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

func oauthOnlyUser(email string) repo.CreateUserOptions {
	return repo.CreateUserOptions{Email: email, Name: "OAuth"}
}

func newTestUseCase(repo *memoryRepo) *implUseCase {
	manager := scope.NewJWTManager("test-secret", time.Hour)
	google := GoogleConfig{ClientID: "client-id", ClientSecret: "client-secret", RedirectURL: "http://localhost/callback"}
	return New(repo, manager, google, log.NoopLogger{})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Account And Session", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())

		out, err := uc.Register(ctx, auth.RegisterInput{
			Email:    "Dev@Example.com",
			Name:     "Dev",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
		if out.User.Email != "dev@example.com" {
			t.Errorf("email not normalized: %q", out.User.Email)
		}
		if out.User.PasswordHash == "correct horse battery" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		input := auth.RegisterInput{Email: "dev@example.com", Password: "correct horse battery"}

		if _, err := uc.Register(ctx, input); err != nil {
			t.Fatalf("first Register: %v", err)
		}
		if _, err := uc.Register(ctx, input); err != auth.ErrEmailTaken {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Case And Whitespace Variants Are One Account", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())

		out, err := uc.Register(ctx, auth.RegisterInput{Email: " Dev@Example.com ", Password: "correct horse battery"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if out.User.Email != "dev@example.com" {
			t.Errorf("email not normalized: %q", out.User.Email)
		}

		_, err = uc.Register(ctx, auth.RegisterInput{Email: "DEV@example.com", Password: "correct horse battery"})
		if err != auth.ErrEmailTaken {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Short Password", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		_, err := uc.Register(ctx, auth.RegisterInput{Email: "dev@example.com", Password: "short"})
		if err != auth.ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Bad Email", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		_, err := uc.Register(ctx, auth.RegisterInput{Email: "not-an-email", Password: "correct horse battery"})
		if err != auth.ErrMissingField {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(repo)
		if _, err := uc.Register(ctx, auth.RegisterInput{Email: "dev@example.com", Password: "correct horse battery"}); err != nil {
			t.Fatalf("Register: %v", err)
		}

		out, err := uc.Login(ctx, auth.LoginInput{Email: "dev@example.com", Password: "correct horse battery"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("Email Casing Does Not Matter", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		if _, err := uc.Register(ctx, auth.RegisterInput{Email: "dev@example.com", Password: "correct horse battery"}); err != nil {
			t.Fatalf("Register: %v", err)
		}

		out, err := uc.Login(ctx, auth.LoginInput{Email: " DEV@Example.com ", Password: "correct horse battery"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.User.Email != "dev@example.com" {
			t.Errorf("wrong user: %q", out.User.Email)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		if _, err := uc.Register(ctx, auth.RegisterInput{Email: "dev@example.com", Password: "correct horse battery"}); err != nil {
			t.Fatalf("Register: %v", err)
		}

		_, err := uc.Login(ctx, auth.LoginInput{Email: "dev@example.com", Password: "wrong password!"})
		if err != auth.ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unknown Email Looks Like Wrong Password", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		_, err := uc.Login(ctx, auth.LoginInput{Email: "nobody@example.com", Password: "whatever else"})
		if err != auth.ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("OAuth Only Account Has No Password Login", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(repo)
		repo.CreateUser(ctx, oauthOnlyUser("oauth@example.com"))

		_, err := uc.Login(ctx, auth.LoginInput{Email: "oauth@example.com", Password: "correct horse battery"})
		if err != auth.ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	t.Run("Known User", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		session, err := uc.Register(ctx, auth.RegisterInput{Email: "dev@example.com", Password: "correct horse battery"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}

		out, err := uc.Me(ctx, session.User.ID)
		if err != nil {
			t.Fatalf("Me: %v", err)
		}
		if out.User.Email != "dev@example.com" {
			t.Errorf("wrong user: %q", out.User.Email)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		uc := newTestUseCase(newMemoryRepo())
		if _, err := uc.Me(ctx, "nope"); err != auth.ErrUserNotFound {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestGoogleAuthURL(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo())
	url := uc.GoogleAuthURL("state-123")
	for _, want := range []string{"client_id=client-id", "state=state-123", "accounts.google.com"} {
		if !strings.Contains(url, want) {
			t.Errorf("auth URL missing %q: %s", want, url)
		}
	}
}
