// Package jobrunner implements one scheduler tick's worth of work on one
// workspace: inventory sync, analysis, and recommendation persistence.
package jobrunner

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"finops/internal/cloudclient"
	"finops/internal/collector"
	"finops/internal/config"
	"finops/internal/credcache"
	"finops/internal/logger"
	"finops/internal/store"
	"finops/internal/store/model"
)

// Runner processes one workspace end to end: inventory sync, analysis,
// and recommendation persistence, recording the attempt as a JobRun.
type Runner struct {
	repo       *store.Repository
	cfg        *config.Config
	dispatcher *collector.Dispatcher
	credCache  *credcache.Cache
}

// NewRunner wires a Runner against the shared repository, config, and
// credential cache, with the default sixteen-collector roster. A nil
// credCache is fine: every AssumeRole path treats it as "cache disabled".
func NewRunner(repo *store.Repository, cfg *config.Config, credCache *credcache.Cache) *Runner {
	return &Runner{
		repo:       repo,
		cfg:        cfg,
		dispatcher: collector.NewDefaultDispatcher(),
		credCache:  credCache,
	}
}

// ProcessWorkspace runs the full eight-step job lifecycle for one
// workspace. A missing workspace is a silent no-op: the scheduler's
// enumeration and this call are not transactional, so a workspace
// deleted between the two is expected, not exceptional.
//
// Any panic or error escaping the analysis/persistence steps is
// recovered and recorded as a failed JobRun; it never propagates to the
// scheduler, and it never changes the workspace's Status away from
// whatever it already was.
func (r *Runner) ProcessWorkspace(ctx context.Context, workspaceID string) error {
	ctx = logger.WithWorkspace(ctx, workspaceID)

	ws, err := r.repo.Workspace.Get(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("load workspace %s: %w", workspaceID, err)
	}
	if ws == nil {
		return nil
	}

	startedAt := time.Now()
	jobRunID, err := r.repo.JobRun.Start(ctx, workspaceID, startedAt)
	if err != nil {
		return fmt.Errorf("start job run for workspace %s: %w", workspaceID, err)
	}

	recommendationsFound, runErr := r.runProtected(ctx, *ws)

	completedAt := time.Now()
	if runErr != nil {
		logger.ErrorCtx(ctx, "job run %s failed: %v", jobRunID, runErr)
		if err := r.repo.JobRun.Fail(ctx, jobRunID, runErr.Error(), completedAt); err != nil {
			return fmt.Errorf("record failed job run %s: %w", jobRunID, err)
		}
		return nil
	}

	if err := r.repo.Workspace.SetStatus(ctx, workspaceID, model.WorkspaceStatusConnected); err != nil {
		return fmt.Errorf("set workspace %s connected: %w", workspaceID, err)
	}
	if err := r.repo.JobRun.Complete(ctx, jobRunID, recommendationsFound, completedAt); err != nil {
		return fmt.Errorf("complete job run %s: %w", jobRunID, err)
	}
	return nil
}

// runProtected recovers any panic raised by the inventory sync, analysis
// fan-out, or persistence steps and turns it into an ordinary error so
// the caller's single error path can record the failed JobRun.
func (r *Runner) runProtected(ctx context.Context, ws model.Workspace) (recommendationsFound int, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.ErrorCtx(ctx, "panic processing workspace: %v\n%s", p, debug.Stack())
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	if syncErr := r.syncInventory(ctx, ws.ID, r.cfg.Cloud.Region, ws.RoleArn); syncErr != nil {
		logger.WarnCtx(ctx, "inventory sync failed: %v", syncErr)
	}

	client, err := cloudclient.New(r.cfg, ws, r.credCache)
	if err != nil {
		return 0, fmt.Errorf("build cloud client: %w", err)
	}

	inputs, err := fetchAnalysisInputs(ctx, client)
	if err != nil {
		return 0, fmt.Errorf("fetch analysis inputs: %w", err)
	}

	recs := runAnalyzers(inputs, time.Now())

	for _, rec := range recs {
		row := &model.Recommendation{
			Type:                    rec.Type,
			ResourceID:              rec.ResourceID,
			Description:             rec.Description,
			EstimatedMonthlySavings: rec.EstimatedMonthlySavings,
			Confidence:              rec.Confidence,
			Metadata:                model.JSONMap(rec.Metadata),
		}
		if err := r.repo.Recommendation.Upsert(ctx, ws.ID, row); err != nil {
			return 0, fmt.Errorf("upsert recommendation for resource %s: %w", rec.ResourceID, err)
		}
	}

	if err := r.applyAnalysisCosts(ctx, ws.ID, inputs); err != nil {
		return 0, fmt.Errorf("apply analysis-path costs: %w", err)
	}

	return len(recs), nil
}

// applyAnalysisCosts overwrites state and cost on the four resources the
// capability set and the collector both describe (EC2, EBS, S3, RDS): the
// collector writes them as metadata-only, and the analysis path is the
// sole source of truth for State and EstimatedMonthlyCost on those rows.
// Every upsert here is scoped to store.ResourceCostUpdateColumns: this
// path never observes name/arn/tags/metadata, and using the full column
// set would null those out on the very row syncInventory just wrote them
// to earlier in this same run.
func (r *Runner) applyAnalysisCosts(ctx context.Context, workspaceID string, in analysisInputs) error {
	now := time.Now()

	for _, inst := range in.ec2Instances {
		cost := pricingEC2(inst)
		resource := &model.Resource{
			ResourceID: inst.InstanceID,
			Service:    "EC2",
			Type:       strPtr(inst.InstanceType),
			State:      strPtr(inst.State),
		}
		resource.EstimatedMonthlyCost = &cost
		if err := r.repo.Resource.Upsert(ctx, workspaceID, resource, now, store.ResourceCostUpdateColumns); err != nil {
			return err
		}
	}

	for _, v := range in.ebsVolumes {
		cost := pricingEBS(v)
		resource := &model.Resource{
			ResourceID: v.VolumeID,
			Service:    "EBS",
			Type:       strPtr(v.VolumeType),
			State:      strPtr(v.State),
		}
		resource.EstimatedMonthlyCost = &cost
		if err := r.repo.Resource.Upsert(ctx, workspaceID, resource, now, store.ResourceCostUpdateColumns); err != nil {
			return err
		}
	}

	for _, b := range in.s3Buckets {
		cost := pricingS3(b)
		resource := &model.Resource{
			ResourceID: b.BucketName,
			Service:    "S3",
			Type:       strPtr(b.StorageClass),
		}
		resource.EstimatedMonthlyCost = &cost
		if err := r.repo.Resource.Upsert(ctx, workspaceID, resource, now, store.ResourceCostUpdateColumns); err != nil {
			return err
		}
	}

	for _, db := range in.rdsInstances {
		cost := pricingRDS(db)
		resource := &model.Resource{
			ResourceID: db.InstanceID,
			Service:    "RDS",
			Type:       strPtr(db.InstanceClass),
			State:      strPtr(db.Status),
		}
		resource.EstimatedMonthlyCost = &cost
		if err := r.repo.Resource.Upsert(ctx, workspaceID, resource, now, store.ResourceCostUpdateColumns); err != nil {
			return err
		}
	}

	return nil
}
