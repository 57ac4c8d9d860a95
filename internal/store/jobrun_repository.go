package store

import (
	"context"
	"errors"
	"time"

	"finops/internal/store/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobRunRepository provides access to the JobRun table.
type JobRunRepository struct {
	ds *Datastore
}

func NewJobRunRepository(ds *Datastore) *JobRunRepository {
	return &JobRunRepository{ds: ds}
}

// Start inserts a new running JobRun and returns its id.
func (r *JobRunRepository) Start(ctx context.Context, workspaceID string, startedAt time.Time) (string, error) {
	run := &model.JobRun{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Status:      model.JobRunStatusRunning,
		StartedAt:   startedAt,
	}
	if err := r.ds.DB(ctx).Create(run).Error; err != nil {
		return "", err
	}
	return run.ID, nil
}

// Complete marks a JobRun completed with the number of recommendations
// touched during the run.
func (r *JobRunRepository) Complete(ctx context.Context, id string, recommendationsFound int, completedAt time.Time) error {
	return r.ds.DB(ctx).Model(&model.JobRun{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":                model.JobRunStatusCompleted,
		"recommendations_found": recommendationsFound,
		"completed_at":          completedAt,
	}).Error
}

// Fail marks a JobRun failed with the triggering error's message.
func (r *JobRunRepository) Fail(ctx context.Context, id string, errMessage string, completedAt time.Time) error {
	return r.ds.DB(ctx).Model(&model.JobRun{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        model.JobRunStatusFailed,
		"error_message": errMessage,
		"completed_at":  completedAt,
	}).Error
}

// Latest returns the most recent JobRun for a workspace, or (nil, nil) if
// none exists yet. Backs the HTTP surface's latest-job-run read.
func (r *JobRunRepository) Latest(ctx context.Context, workspaceID string) (*model.JobRun, error) {
	var run model.JobRun
	err := r.ds.DB(ctx).Where("workspace_id = ?", workspaceID).Order("started_at DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
