// Package scheduler drives the periodic, workspace-by-workspace
// FinOps engine tick.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"finops/internal/jobrunner"
	"finops/internal/logger"
	"finops/internal/store"
	"finops/internal/store/model"
)

// workspaceLister is the one WorkspaceRepository method a tick needs.
// Scoping the field to this instead of *store.Repository lets a tick's
// enumeration be faked in tests without a database.
type workspaceLister interface {
	ListAll(ctx context.Context) ([]model.Workspace, error)
}

// workspaceProcessor is the one Runner method a tick needs, for the same
// reason: faking a full job run in a scheduler test.
type workspaceProcessor interface {
	ProcessWorkspace(ctx context.Context, workspaceID string) error
}

// Scheduler wires the cron clock to the job runner. A single in-flight
// guard ensures a slow tick never overlaps with the next one; ticks that
// arrive while a run is in progress are simply skipped, not queued.
type Scheduler struct {
	cron       *cron.Cron
	workspaces workspaceLister
	runner     workspaceProcessor
	cronExpr   string
	running    atomic.Bool
}

// New wires a Scheduler against the repository, job runner, and the
// configured cron expression.
func New(repo *store.Repository, runner *jobrunner.Runner, cronExpr string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		workspaces: repo.Workspace,
		runner:     runner,
		cronExpr:   cronExpr,
	}
}

// Start registers the tick on the cron expression and fires one tick five
// seconds after startup so the first sweep doesn't wait a full period.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cronExpr, func() { s.tick(ctx) }); err != nil {
		return err
	}
	s.cron.Start()

	time.AfterFunc(5*time.Second, func() { s.tick(ctx) })

	logger.InfoCtx(ctx, "scheduler started with cron expression %q", s.cronExpr)
	return nil
}

// Stop halts the cron clock so no further ticks are scheduled. It returns
// without waiting for a tick that is already running to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// tick enumerates every workspace and processes each one sequentially.
// Sequential, not parallel: each workspace's analysis path already runs
// its own internal fan-out, and running workspaces themselves in parallel
// would multiply AssumeRole traffic against the account with no control
// over concurrency.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		logger.WarnCtx(ctx, "scheduler tick skipped: previous tick still running")
		return
	}
	defer s.running.Store(false)

	workspaces, err := s.workspaces.ListAll(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "scheduler failed to list workspaces: %v", err)
		return
	}

	logger.InfoCtx(ctx, "scheduler tick processing %d workspaces", len(workspaces))
	for _, ws := range workspaces {
		if err := s.runner.ProcessWorkspace(ctx, ws.ID); err != nil {
			logger.ErrorCtx(ctx, "scheduler failed processing workspace %s: %v", ws.ID, err)
		}
	}
}
