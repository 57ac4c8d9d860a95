// Package analyzer implements the eight cost-optimization heuristics.
// Each function is a pure slice-in/slice-out transform: no I/O, and no
// clock read except where the signature explicitly takes `now`.
package analyzer

import (
	"time"

	"finops/internal/store/model"
)

// Recommendation is the heuristic output, later persisted verbatim (minus
// Status, which the store assigns on insert).
type Recommendation struct {
	Type                    model.RecommendationType
	ResourceID              string
	Description             string
	EstimatedMonthlySavings float64
	Confidence              model.Confidence
	Metadata                map[string]interface{}
}

// EC2Usage describes one EC2 instance's state and observed CPU profile
// over the metric window.
type EC2Usage struct {
	InstanceID    string
	InstanceType  string
	State         string
	AvgCPUPercent float64
	PeriodDays    int
}

// EBSVolume describes one EBS volume's state and attachment count.
type EBSVolume struct {
	VolumeID        string
	VolumeType      string
	State           string
	SizeGiB         float64
	AttachmentCount int
	CreateTime      time.Time
}

// S3Object describes one S3 bucket's access recency and storage class.
type S3Object struct {
	BucketName       string
	StorageClass     string
	SizeBytes        int64
	LastAccessedDays int
}

// RDSUsage describes one RDS instance's status and observed load.
type RDSUsage struct {
	InstanceID      string
	InstanceClass   string
	Status          string
	AvgCPUPercent   float64
	AvgConnections  float64
}

// LambdaFunction describes one Lambda function's configuration and
// observed invocation profile.
type LambdaFunction struct {
	FunctionName          string
	MemoryMB              float64
	TimeoutSec            float64
	AvgInvocationsPerDay  float64
	AvgDurationMs         float64
}

// LoadBalancer describes one ALB/NLB's state, target count, and traffic.
type LoadBalancer struct {
	Name                string
	State               string
	TotalTargetCount    int
	RequestCountPerDay  float64
}

// ElasticIP describes one Elastic IP's association.
type ElasticIP struct {
	AllocationID  string
	AssociationID string
}

// NATGateway describes one NAT gateway's state and observed traffic.
type NATGateway struct {
	NatGatewayID         string
	State                string
	BytesProcessedPerDay float64
}
