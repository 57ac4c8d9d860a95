package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finops/internal/store"
)

// JobRunHandler serves the workspace job-run read endpoint.
type JobRunHandler struct {
	repo *store.Repository
}

// NewJobRunHandler wires a JobRunHandler against the shared repository.
func NewJobRunHandler(repo *store.Repository) *JobRunHandler {
	return &JobRunHandler{repo: repo}
}

// LatestForWorkspace returns the most recent JobRun for a workspace.
// GET /workspaces/:id/jobs/latest
func (h *JobRunHandler) LatestForWorkspace(c *gin.Context) {
	workspaceID := c.Param("id")

	run, err := h.repo.JobRun.Latest(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no job runs for workspace"})
		return
	}

	c.JSON(http.StatusOK, run)
}
