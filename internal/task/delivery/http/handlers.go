package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/internal/task"
	"task-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task owned by the authenticated user.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, optionally filtered by planned date and status.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       date   query string false "Planned date (YYYY-MM-DD or relative: today, tomorrow)"
// @Param       status query string false "Task status filter"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its routine link and work session log.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.UserID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update: only fields present in the body are changed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and its time records.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.UserID(c), id); err != nil {
		h.l.Errorf(ctx, "task.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "Task deleted successfully"})
}

// Start godoc
// @Summary     Start a task
// @Description Moves PENDING or PAUSED to IN_PROGRESS and opens a work session.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Invalid transition"
// @Router      /api/v1/tasks/{id}/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Start(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.http.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// Pause godoc
// @Summary     Pause a task
// @Description Moves IN_PROGRESS to PAUSED, counts an interruption and closes the open session.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Invalid transition"
// @Router      /api/v1/tasks/{id}/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Pause(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.http.Pause: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Moves IN_PROGRESS to COMPLETED. actualMinutes comes from the caller and is stored as-is.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body completeReq true "Actual focused minutes"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Invalid transition"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, task.CompleteTaskInput{
		ID:            c.Param("id"),
		UserID:        middleware.UserID(c),
		ActualMinutes: *req.ActualMinutes,
	})
	if err != nil {
		h.l.Errorf(ctx, "task.http.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output))
}
