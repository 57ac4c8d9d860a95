package model

import "time"

// JobRunStatus is the lifecycle state of one scheduler attempt on one
// workspace.
type JobRunStatus string

const (
	JobRunStatusRunning   JobRunStatus = "running"
	JobRunStatusCompleted JobRunStatus = "completed"
	JobRunStatusFailed    JobRunStatus = "failed"
)

// JobRun is one row per scheduler attempt on one workspace.
//
// Invariants: Status=running implies CompletedAt is nil; Status in
// {completed, failed} implies CompletedAt is set and StartedAt <=
// CompletedAt.
type JobRun struct {
	ID                   string       `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	WorkspaceID          string       `gorm:"column:workspace_id;type:varchar(36);not null;index:idx_jobrun_workspace" json:"workspace_id"`
	Status               JobRunStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	RecommendationsFound int          `gorm:"column:recommendations_found;type:int;not null;default:0" json:"recommendations_found"`
	ErrorMessage         *string      `gorm:"column:error_message;type:varchar(1024)" json:"error_message,omitempty"`
	StartedAt            time.Time    `gorm:"column:started_at;type:datetime(3);not null" json:"started_at"`
	CompletedAt          *time.Time   `gorm:"column:completed_at;type:datetime(3)" json:"completed_at,omitempty"`
}

func (JobRun) TableName() string {
	return "job_runs"
}
