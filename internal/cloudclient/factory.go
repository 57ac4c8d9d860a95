package cloudclient

import (
	"time"

	"finops/internal/config"
	"finops/internal/credcache"
	"finops/internal/store/model"
)

// New selects the Live or Mock implementation for a workspace based on
// configuration, directly modeled on the teacher's provider factory
// switch. Every workspace gets its own *LiveClient: credentials are never
// shared across workspaces, though a shared credCache lets successive
// ticks against the same workspace skip a redundant AssumeRole call.
func New(cfg *config.Config, workspace model.Workspace, credCache *credcache.Cache) (Client, error) {
	if cfg.Cloud.Mock {
		return NewMockClient(time.Now()), nil
	}
	return NewLiveClient(cfg.Cloud.Region, workspace.RoleArn, workspace.ID, credCache), nil
}
