package http

import (
	"time"

	"task-scheduler/internal/auth"
	"task-scheduler/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Name     string `json:"name"     binding:"max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{Email: r.Email, Name: r.Name, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type googleCallbackReq struct {
	Code string `json:"code" binding:"required"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type sessionResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newSessionResp(out auth.SessionOutput) sessionResp {
	return sessionResp{User: newUserResp(out.User), Token: out.Token}
}
