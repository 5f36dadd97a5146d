package http

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/ciperf"
	pkgErrors "task-scheduler/pkg/errors"
	"task-scheduler/pkg/response"
)

// Summary godoc
// @Summary     CI performance summary
// @Description Returns the latest aggregated CI metrics. Falls back to
//              synthetic placeholder data when no report has been generated.
// @Tags        CI Performance
// @Produce     json
// @Success     200 {object} ciperf.Summary
// @Router      /api/v1/ci-performance/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.store.LoadLatestSummary()
	if errors.Is(err, os.ErrNotExist) {
		summary, _ = ciperf.SyntheticReport()
		response.OK(c, gin.H{"summary": summary, "synthetic": true})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "ciperf.http.Summary: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, gin.H{"summary": summary, "synthetic": false})
}

// Detailed godoc
// @Summary     CI performance per-run detail
// @Description Returns the latest per-run analyses. Falls back to synthetic
//              placeholder data when no report has been generated.
// @Tags        CI Performance
// @Produce     json
// @Success     200 {array} ciperf.RunAnalysis
// @Router      /api/v1/ci-performance/detailed [GET]
func (h *handler) Detailed(c *gin.Context) {
	ctx := c.Request.Context()

	analyses, err := h.store.LoadLatestDetailed()
	if errors.Is(err, os.ErrNotExist) {
		_, analyses = ciperf.SyntheticReport()
		response.OK(c, gin.H{"runs": analyses, "synthetic": true})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "ciperf.http.Detailed: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, gin.H{"runs": analyses, "synthetic": false})
}
