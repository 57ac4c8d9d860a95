package model

import "time"

// ResourceState is the lifecycle state of an observed cloud object. Any
// value other than NotFound is service-specific (running, available,
// active, ...); the engine only ever writes NotFound itself.
const ResourceStateNotFound = "not-found"

// Resource is a cloud object observed in a workspace. Identity is
// (WorkspaceID, ResourceID); see ResourceRepository.Upsert.
type Resource struct {
	ID                   string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	WorkspaceID          string    `gorm:"column:workspace_id;type:varchar(36);not null;uniqueIndex:idx_resource_unique;index:idx_resource_workspace" json:"workspace_id"`
	ResourceID           string    `gorm:"column:resource_id;type:varchar(255);not null;uniqueIndex:idx_resource_unique" json:"resource_id"`
	ARN                  *string   `gorm:"column:arn;type:varchar(512)" json:"arn,omitempty"`
	Service               string    `gorm:"column:service;type:varchar(32);not null;index:idx_resource_service" json:"service"`
	Type                 *string   `gorm:"column:type;type:varchar(64)" json:"type,omitempty"`
	Name                 *string   `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	Tags                 StringMap `gorm:"column:tags;type:json" json:"tags,omitempty"`
	Metadata             JSONMap   `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
	State                *string   `gorm:"column:state;type:varchar(32)" json:"state,omitempty"`
	LastSeenAt           time.Time `gorm:"column:last_seen_at;type:datetime(3);not null" json:"last_seen_at"`
	EstimatedMonthlyCost *float64  `gorm:"column:estimated_monthly_cost;type:decimal(12,4)" json:"estimated_monthly_cost,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"updated_at"`
}

func (Resource) TableName() string {
	return "resources"
}
