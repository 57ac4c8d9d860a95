package store

import (
	"context"

	"finops/internal/store/model"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// RecommendationRepository provides idempotent access to the
// Recommendation table.
type RecommendationRepository struct {
	ds *Datastore
}

func NewRecommendationRepository(ds *Datastore) *RecommendationRepository {
	return &RecommendationRepository{ds: ds}
}

// recommendationUpdateColumns excludes status and created_at: status
// carries user intent (acknowledged/dismissed) that the engine must never
// overwrite on rerun, and created_at marks first detection.
var recommendationUpdateColumns = []string{
	"description", "estimated_monthly_savings", "confidence", "metadata", "updated_at",
}

// Upsert inserts or refreshes a Recommendation row keyed by
// (workspace_id, resource_id, type). On insert, an empty Status is set to
// "new" before the row is written. On update, every descriptive field is
// refreshed but Status is left exactly as the user last set it.
func (r *RecommendationRepository) Upsert(ctx context.Context, workspaceID string, rec *model.Recommendation) error {
	rec.WorkspaceID = workspaceID
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Status == "" {
		rec.Status = model.RecommendationStatusNew
	}

	return r.ds.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "resource_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns(recommendationUpdateColumns),
	}).Create(rec).Error
}

// ListByWorkspace returns every recommendation in a workspace, for tests
// and diagnostics.
func (r *RecommendationRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	if err := r.ds.DB(ctx).Where("workspace_id = ?", workspaceID).Order("resource_id, type").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// SetStatus is exposed for the HTTP layer's (out of scope) acknowledge/
// dismiss actions and for seeding the status-preservation test scenario.
func (r *RecommendationRepository) SetStatus(ctx context.Context, id string, status model.RecommendationStatus) error {
	return r.ds.DB(ctx).Model(&model.Recommendation{}).Where("id = ?", id).Update("status", status).Error
}
