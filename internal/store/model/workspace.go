package model

import "time"

// WorkspaceStatus is the connection state of a tenant workspace.
type WorkspaceStatus string

const (
	WorkspaceStatusPending   WorkspaceStatus = "pending"
	WorkspaceStatusConnected WorkspaceStatus = "connected"
	WorkspaceStatusError     WorkspaceStatus = "error"
)

// Workspace is a tenant anchor pointing at one AWS account via a
// cross-account role. It is created by the HTTP layer (out of scope here)
// and mutated only in its Status field by the scheduler/job runner.
type Workspace struct {
	ID           string          `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name         string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	RoleArn      string          `gorm:"column:role_arn;type:varchar(255);not null" json:"role_arn"`
	AWSAccountID string          `gorm:"column:aws_account_id;type:varchar(32);not null" json:"aws_account_id"`
	Status       WorkspaceStatus `gorm:"column:status;type:varchar(16);not null;default:pending" json:"status"`
	UserID       string          `gorm:"column:user_id;type:varchar(36);not null;index:idx_workspace_user" json:"user_id"`
	CreatedAt    time.Time       `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
