package jobrunner

import (
	"context"
	"time"

	"finops/internal/collector"
	"finops/internal/logger"
	"finops/internal/store"
	"finops/internal/store/model"
)

// syncInventory runs the full sixteen-collector sweep and upserts every
// record into Resource, then sweeps stale rows. A per-collector failure
// is logged and does not abort the sweep (the dispatcher already
// isolates those); a per-resource upsert failure is logged and the loop
// continues, per spec.md §4.5's transactional-discipline note.
func (r *Runner) syncInventory(ctx context.Context, workspaceID, region, roleArn string) error {
	clients := collector.NewClients(region, roleArn, workspaceID, r.credCache)
	records, collectErrs := r.dispatcher.Run(ctx, clients)
	for _, e := range collectErrs {
		logger.WarnCtx(ctx, "collector error: %s", e)
	}

	now := time.Now()
	for _, rec := range records {
		resource := &model.Resource{
			ResourceID: rec.ResourceID,
			Service:    rec.Service,
			Metadata:   model.JSONMap(rec.Metadata),
			Tags:       model.StringMap(rec.Tags),
		}
		if rec.ARN != "" {
			resource.ARN = strPtr(rec.ARN)
		}
		if rec.Type != "" {
			resource.Type = strPtr(rec.Type)
		}
		if rec.Name != "" {
			resource.Name = strPtr(rec.Name)
		}
		if rec.State != "" {
			resource.State = strPtr(rec.State)
		}
		resource.EstimatedMonthlyCost = rec.EstimatedMonthlyCost

		columns := store.ResourceUpdateColumns
		if resource.EstimatedMonthlyCost != nil {
			columns = append(append([]string{}, store.ResourceUpdateColumns...), "estimated_monthly_cost")
		}
		if err := r.repo.Resource.Upsert(ctx, workspaceID, resource, now, columns); err != nil {
			logger.ErrorCtx(ctx, "upsert resource %s failed: %v", rec.ResourceID, err)
		}
	}

	if _, err := r.repo.Resource.SweepStale(ctx, workspaceID, now); err != nil {
		return err
	}
	return nil
}

// strPtr mirrors the AWS SDK's ptr-of-value idiom used throughout this
// codebase for optional string columns.
func strPtr(s string) *string {
	return &s
}
