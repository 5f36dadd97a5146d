package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a new routine
// @Description Creates a recurring task template owned by the authenticated user.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Routine data"
// @Success     201 {object} routineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/routines [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "routine.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newRoutineResp(output.Routine))
}

// List godoc
// @Summary     List routines
// @Description Returns all of the user's routines, newest first.
// @Tags        Routines
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/routines [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "routine.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get routine detail
// @Tags        Routines
// @Produce     json
// @Param       id path string true "Routine ID"
// @Success     200 {object} routineResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/routines/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.UserID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "routine.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoutineResp(output.Routine))
}

// Update godoc
// @Summary     Update a routine
// @Description Partial update: only fields present in the body are changed.
//              Already generated tasks are never touched.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Routine ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} routineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/routines/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "routine.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoutineResp(output.Routine))
}

// Delete godoc
// @Summary     Delete a routine
// @Description Removes the template. Previously generated tasks survive.
// @Tags        Routines
// @Produce     json
// @Param       id path string true "Routine ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/routines/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.UserID(c), id); err != nil {
		h.l.Errorf(ctx, "routine.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "Routine deleted successfully"})
}

// GenerateTask godoc
// @Summary     Generate a task from a routine
// @Description Materializes a PENDING task for the given planned date.
//              At most one task per routine and date.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Routine ID"
// @Param       body body generateReq true "Target planned date"
// @Success     201 {object} generatedTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already generated"
// @Router      /api/v1/routines/{id}/generate-task [POST]
func (h *handler) GenerateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "routine.http.GenerateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newGeneratedTaskResp(output))
}
