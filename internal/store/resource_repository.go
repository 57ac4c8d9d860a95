package store

import (
	"context"
	"time"

	"finops/internal/store/model"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// ResourceRepository provides idempotent access to the Resource table.
type ResourceRepository struct {
	ds *Datastore
}

func NewResourceRepository(ds *Datastore) *ResourceRepository {
	return &ResourceRepository{ds: ds}
}

// ResourceUpdateColumns lists every descriptive column refreshed when the
// full resource is known, as it is during inventory sync
// (internal/jobrunner's syncInventory): arn, type, name, tags, metadata,
// and state all came off the same collector record. created_at is
// intentionally excluded so the original insert timestamp survives every
// later observation.
var ResourceUpdateColumns = []string{
	"arn", "service", "type", "name", "tags", "metadata", "state",
	"last_seen_at", "updated_at",
}

// ResourceCostUpdateColumns lists the columns the analysis path
// (internal/jobrunner's applyAnalysisCosts) is allowed to touch. That
// path only ever builds a partial Resource{ResourceID, Service, Type,
// State} for EC2/EBS/S3/RDS to attach a computed cost — it never
// observes name/arn/tags/metadata, so an upsert from there must not
// include those columns in DoUpdates, or it overwrites what inventory
// sync already wrote for the same row with zero values.
var ResourceCostUpdateColumns = []string{
	"type", "state", "estimated_monthly_cost", "last_seen_at", "updated_at",
}

// Upsert inserts or refreshes a Resource row keyed by (workspace_id,
// resource_id). columns lists which columns are refreshed on conflict;
// callers pass ResourceUpdateColumns when rec describes the full
// resource, or ResourceCostUpdateColumns when rec only carries a
// computed cost/state/type. On insert, every field on rec is written and
// LastSeenAt=now regardless of columns. CreatedAt is always preserved on
// update.
func (r *ResourceRepository) Upsert(ctx context.Context, workspaceID string, rec *model.Resource, now time.Time, columns []string) error {
	rec.WorkspaceID = workspaceID
	rec.LastSeenAt = now
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	return r.ds.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(rec).Error
}

// SweepStale soft-deletes every Resource in the workspace whose
// LastSeenAt predates the 1-hour staleness threshold by marking its state
// not-found. Rows remain queryable; nothing is physically deleted.
func (r *ResourceRepository) SweepStale(ctx context.Context, workspaceID string, now time.Time) (int64, error) {
	threshold := now.Add(-time.Hour)
	notFound := model.ResourceStateNotFound
	result := r.ds.DB(ctx).Model(&model.Resource{}).
		Where("workspace_id = ? AND last_seen_at < ? AND (state IS NULL OR state <> ?)", workspaceID, threshold, notFound).
		Update("state", notFound)
	return result.RowsAffected, result.Error
}

// ListByWorkspace returns every resource in a workspace, for tests and
// diagnostics.
func (r *ResourceRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]model.Resource, error) {
	var resources []model.Resource
	if err := r.ds.DB(ctx).Where("workspace_id = ?", workspaceID).Order("resource_id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
