package model

import "time"

// RecommendationType is the closed set of heuristic codes the analyzer
// library emits.
type RecommendationType string

const (
	RecommendationEC2DownSize     RecommendationType = "EC2_DOWN_SIZE"
	RecommendationEBSOrphan       RecommendationType = "EBS_ORPHAN"
	RecommendationS3Lifecycle     RecommendationType = "S3_LIFECYCLE"
	RecommendationRDSDownSize     RecommendationType = "RDS_DOWN_SIZE"
	RecommendationLambdaUnused    RecommendationType = "LAMBDA_UNUSED"
	RecommendationLambdaOversized RecommendationType = "LAMBDA_OVERSIZED"
	RecommendationELBNoTargets    RecommendationType = "ELB_NO_TARGETS"
	RecommendationELBNoTraffic    RecommendationType = "ELB_NO_TRAFFIC"
	RecommendationEIPUnassociated RecommendationType = "EIP_UNASSOCIATED"
	RecommendationNATGWIdle       RecommendationType = "NAT_GW_IDLE"
)

// Confidence is the qualitative certainty label surfaced to the user.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// RecommendationStatus tracks user intent. The engine only ever writes
// RecommendationStatusNew on insert; it never overwrites an existing
// status on update.
type RecommendationStatus string

const (
	RecommendationStatusNew          RecommendationStatus = "new"
	RecommendationStatusAcknowledged RecommendationStatus = "acknowledged"
	RecommendationStatusDismissed    RecommendationStatus = "dismissed"
)

// Recommendation is a detected optimization opportunity, deduplicated by
// (WorkspaceID, ResourceID, Type).
type Recommendation struct {
	ID                      string                `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	WorkspaceID             string                `gorm:"column:workspace_id;type:varchar(36);not null;uniqueIndex:idx_recommendation_unique;index:idx_recommendation_workspace" json:"workspace_id"`
	Type                    RecommendationType    `gorm:"column:type;type:varchar(32);not null;uniqueIndex:idx_recommendation_unique" json:"type"`
	ResourceID              string                `gorm:"column:resource_id;type:varchar(255);not null;uniqueIndex:idx_recommendation_unique" json:"resource_id"`
	Description             string                `gorm:"column:description;type:varchar(1024);not null" json:"description"`
	EstimatedMonthlySavings float64               `gorm:"column:estimated_monthly_savings;type:decimal(12,4);not null;default:0" json:"estimated_monthly_savings"`
	Confidence              Confidence            `gorm:"column:confidence;type:varchar(8);not null" json:"confidence"`
	Status                  RecommendationStatus  `gorm:"column:status;type:varchar(16);not null;default:new;index:idx_recommendation_status" json:"status"`
	Metadata                JSONMap               `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
	CreatedAt               time.Time             `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
	UpdatedAt               time.Time             `gorm:"column:updated_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
