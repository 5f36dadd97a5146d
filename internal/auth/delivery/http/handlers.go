package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/auth"
	"task-scheduler/internal/middleware"
	"task-scheduler/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a password-based account and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newSessionResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// GoogleURL godoc
// @Summary     Google consent URL
// @Description Returns the URL to redirect the user to for Google sign-in.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/google/url [GET]
func (h *handler) GoogleURL(c *gin.Context) {
	state := c.Query("state")
	response.OK(c, gin.H{"url": h.uc.GoogleAuthURL(state)})
}

// GoogleCallback godoc
// @Summary     Google sign-in callback
// @Description Exchanges the authorization code; creates the account on
//              first sign-in.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body googleCallbackReq true "Authorization code"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Exchange failed"
// @Router      /api/v1/auth/google/callback [POST]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req googleCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GoogleCallback(ctx, auth.GoogleCallbackInput{Code: req.Code})
	if err != nil {
		h.l.Warnf(ctx, "auth.http.GoogleCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Me(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "auth.http.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(output.User))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the current session token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		h.uc.Logout(token)
	}
	response.OK(c, gin.H{"message": "Logged out"})
}

func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie
	}
	return ""
}
