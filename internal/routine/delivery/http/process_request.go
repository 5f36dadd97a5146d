package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create routine request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = middleware.UserID(c)
	return req, nil
}

// processUpdateReq binds the update routine request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	req.UserID = middleware.UserID(c)
	return req, nil
}

// processGenerateReq binds the generate-task request body + URI param.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.RoutineID = c.Param("id")
	if req.RoutineID == "" {
		return req, errMissingID
	}
	req.UserID = middleware.UserID(c)
	return req, req.validate()
}
