package store

import (
	"context"
	"errors"

	"finops/internal/store/model"

	"gorm.io/gorm"
)

// WorkspaceRepository provides access to the Workspace table.
type WorkspaceRepository struct {
	ds *Datastore
}

func NewWorkspaceRepository(ds *Datastore) *WorkspaceRepository {
	return &WorkspaceRepository{ds: ds}
}

// Get loads a workspace by id. Returns (nil, nil) if absent so callers can
// distinguish "not found" from a transport error without a sentinel check
// at every call site.
func (r *WorkspaceRepository) Get(ctx context.Context, id string) (*model.Workspace, error) {
	var ws model.Workspace
	err := r.ds.DB(ctx).Where("id = ?", id).First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// ListAll returns every workspace, in primary-key order, for the
// scheduler's per-tick enumeration.
func (r *WorkspaceRepository) ListAll(ctx context.Context) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	if err := r.ds.DB(ctx).Order("id").Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

// SetStatus updates a workspace's connection status. The job runner calls
// this on successful completion; it is otherwise untouched by the core.
func (r *WorkspaceRepository) SetStatus(ctx context.Context, id string, status model.WorkspaceStatus) error {
	return r.ds.DB(ctx).Model(&model.Workspace{}).Where("id = ?", id).Update("status", status).Error
}
