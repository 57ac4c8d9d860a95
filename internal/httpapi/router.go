// Package httpapi exposes the engine's minimal read surface: a health
// check and the latest JobRun per workspace. Workspace CRUD, auth, and
// dashboard queries are out of scope.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"finops/internal/store"
)

// Router wires the gin engine against the handlers it serves.
type Router struct {
	jobRunHandler *JobRunHandler
}

// NewRouter builds a Router backed by the shared repository.
func NewRouter(repo *store.Repository) *Router {
	return &Router{jobRunHandler: NewJobRunHandler(repo)}
}

// Setup registers every route on the given gin engine.
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(recovery())
	engine.Use(requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.GET("/workspaces/:id/jobs/latest", r.jobRunHandler.LatestForWorkspace)
}
