// Package cloudclient is the capability-set abstraction over a single AWS
// workspace: a fixed list of read-only operations used by the analysis
// path (§4.3). It is deliberately narrower than the resource collector
// (internal/collector): this package answers "what should I recommend",
// the collector answers "what exists".
package cloudclient

import (
	"context"
	"time"
)

// EC2Instance is the analysis-path view of a running or stopped EC2
// instance.
type EC2Instance struct {
	InstanceID   string
	InstanceType string
	State        string
}

// CPUMetric is the 14-day CloudWatch CPUUtilization aggregate for one EC2
// instance.
type CPUMetric struct {
	InstanceID    string
	AvgCPUPercent float64
	MaxCPUPercent float64
	PeriodDays    int
}

// EBSVolume is the analysis-path view of an EBS volume.
type EBSVolume struct {
	VolumeID        string
	VolumeType      string
	State           string
	SizeGiB         float64
	AttachmentCount int
	CreateTime      time.Time
}

// S3Bucket is the analysis-path view of an S3 bucket, enriched with the
// storage-class-weighted size and access recency needed by the lifecycle
// heuristic.
type S3Bucket struct {
	BucketName       string
	StorageClass     string
	SizeBytes        int64
	LastAccessedDays int
}

// RDSInstance is the analysis-path view of an RDS instance.
type RDSInstance struct {
	InstanceID     string
	InstanceClass  string
	Status         string
	AvgCPUPercent  float64
	AvgConnections float64
}

// LambdaFunction is the analysis-path view of a Lambda function.
type LambdaFunction struct {
	FunctionName         string
	MemoryMB             float64
	TimeoutSec           float64
	AvgInvocationsPerDay float64
	AvgDurationMs        float64
}

// LoadBalancer is the analysis-path view of an ALB or NLB.
type LoadBalancer struct {
	Name               string
	State              string
	TotalTargetCount   int
	RequestCountPerDay float64
}

// NATGateway is the analysis-path view of a NAT gateway.
type NATGateway struct {
	NatGatewayID         string
	State                string
	BytesProcessedPerDay float64
}

// ElasticIP is the analysis-path view of an Elastic IP allocation.
type ElasticIP struct {
	AllocationID  string
	AssociationID string
}

// CostData is a workspace's current-month spend. TotalMonthly and every
// entry of ByService are treated as monthly averages (see DESIGN.md).
type CostData struct {
	TotalMonthly float64
	ByService    map[string]float64
}

// Client is the capability set a workspace's analysis path depends on.
// Every operation either returns its complete result or a typed error;
// partial results are never returned from a single call.
type Client interface {
	ListEC2Instances(ctx context.Context) ([]EC2Instance, error)
	GetEC2CPUMetrics(ctx context.Context, instanceIDs []string) ([]CPUMetric, error)
	ListEBSVolumes(ctx context.Context) ([]EBSVolume, error)
	ListS3Buckets(ctx context.Context) ([]S3Bucket, error)
	ListRDSInstances(ctx context.Context) ([]RDSInstance, error)
	ListLambdaFunctions(ctx context.Context) ([]LambdaFunction, error)
	ListLoadBalancers(ctx context.Context) ([]LoadBalancer, error)
	ListNATGateways(ctx context.Context) ([]NATGateway, error)
	ListElasticIPs(ctx context.Context) ([]ElasticIP, error)
	GetCostData(ctx context.Context) (CostData, error)
	TestConnection(ctx context.Context) error
}
