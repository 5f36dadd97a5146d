package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/auth"
	"task-scheduler/internal/model"
	"task-scheduler/pkg/log"
)

type mockUseCase struct {
	session auth.SessionOutput
	user    auth.UserOutput
	err     error

	revoked string
}

func (m *mockUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.SessionOutput, error) {
	return m.session, m.err
}

func (m *mockUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	return m.session, m.err
}

func (m *mockUseCase) GoogleAuthURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *mockUseCase) GoogleCallback(ctx context.Context, input auth.GoogleCallbackInput) (auth.SessionOutput, error) {
	return m.session, m.err
}

func (m *mockUseCase) Me(ctx context.Context, userID string) (auth.UserOutput, error) {
	return m.user, m.err
}

func (m *mockUseCase) Logout(token string) {
	m.revoked = token
}

func newTestContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestHandlerRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{session: auth.SessionOutput{User: model.User{ID: "user-1", Email: "dev@example.com"}, Token: "tok"}}
		h := New(log.NoopLogger{}, uc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":    "dev@example.com",
			"password": "correct horse battery",
		})
		h.Register(c)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Short Password Rejected By Binding", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":    "dev@example.com",
			"password": "short",
		})
		h.Register(c)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Taken Email Is 409", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{err: auth.ErrEmailTaken})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
			"email":    "dev@example.com",
			"password": "correct horse battery",
		})
		h.Register(c)

		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestHandlerLogin(t *testing.T) {
	t.Run("Invalid Credentials Is 401", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{err: auth.ErrInvalidCredentials})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "dev@example.com",
			"password": "wrong",
		})
		h.Login(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestHandlerLogout(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NoopLogger{}, uc)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer tok-123")
	h.Logout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.revoked != "tok-123" {
		t.Errorf("token not revoked: %q", uc.revoked)
	}
}

func TestHandlerGoogleURL(t *testing.T) {
	h := New(log.NoopLogger{}, &mockUseCase{})

	c, w := newTestContext(t, http.MethodGet, "/api/v1/auth/google/url?state=abc", nil)
	h.GoogleURL(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("accounts.google.com")) {
		t.Errorf("missing consent URL: %s", w.Body.String())
	}
}
