package cloudclient

import (
	"context"
	"time"

	"finops/internal/pricing"
)

// MockClient is the deterministic in-memory Client implementation used by
// tests and by any workspace with mock mode enabled. Every List* method
// returns a defensive copy of its fixture slice so callers can't mutate
// shared state across calls, keeping repeated calls byte-identical.
type MockClient struct {
	now time.Time
}

// NewMockClient builds a mock client anchored at a fixed instant so every
// age/recency calculation derived from the fixtures (EBS orphan age, S3
// access recency) is reproducible across runs.
func NewMockClient(now time.Time) *MockClient {
	return &MockClient{now: now}
}

func (c *MockClient) TestConnection(ctx context.Context) error {
	return nil
}

func (c *MockClient) ListEC2Instances(ctx context.Context) ([]EC2Instance, error) {
	fixtures := []EC2Instance{
		{InstanceID: "i-0a1b2c3d4e5f00001", InstanceType: "m5.large", State: "running"},
		{InstanceID: "i-0a1b2c3d4e5f00002", InstanceType: "c5.xlarge", State: "stopped"},
		{InstanceID: "i-0a1b2c3d4e5f00003", InstanceType: "r5.large", State: "running"},
		{InstanceID: "i-0a1b2c3d4e5f00004", InstanceType: "t3.medium", State: "running"},
	}
	return append([]EC2Instance(nil), fixtures...), nil
}

func (c *MockClient) GetEC2CPUMetrics(ctx context.Context, instanceIDs []string) ([]CPUMetric, error) {
	byID := map[string]CPUMetric{
		"i-0a1b2c3d4e5f00001": {InstanceID: "i-0a1b2c3d4e5f00001", AvgCPUPercent: 42.5, MaxCPUPercent: 78.0, PeriodDays: 14},
		"i-0a1b2c3d4e5f00002": {InstanceID: "i-0a1b2c3d4e5f00002", AvgCPUPercent: 0, MaxCPUPercent: 0, PeriodDays: 14},
		"i-0a1b2c3d4e5f00003": {InstanceID: "i-0a1b2c3d4e5f00003", AvgCPUPercent: 55.0, MaxCPUPercent: 91.0, PeriodDays: 14},
		"i-0a1b2c3d4e5f00004": {InstanceID: "i-0a1b2c3d4e5f00004", AvgCPUPercent: 3.2, MaxCPUPercent: 11.0, PeriodDays: 14},
	}

	var out []CPUMetric
	for _, id := range instanceIDs {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *MockClient) ListEBSVolumes(ctx context.Context) ([]EBSVolume, error) {
	fixtures := []EBSVolume{
		{VolumeID: "vol-0a1b2c3d4e5f00001", VolumeType: "gp3", State: "in-use", SizeGiB: 100, AttachmentCount: 1, CreateTime: c.now.Add(-90 * 24 * time.Hour)},
		{VolumeID: "vol-0a1b2c3d4e5f00002", VolumeType: "gp2", State: "available", SizeGiB: 500, AttachmentCount: 0, CreateTime: c.now.Add(-30 * 24 * time.Hour)},
		{VolumeID: "vol-0a1b2c3d4e5f00003", VolumeType: "io1", State: "in-use", SizeGiB: 50, AttachmentCount: 1, CreateTime: c.now.Add(-200 * 24 * time.Hour)},
	}
	return append([]EBSVolume(nil), fixtures...), nil
}

func (c *MockClient) ListS3Buckets(ctx context.Context) ([]S3Bucket, error) {
	fixtures := []S3Bucket{
		{BucketName: "company-logs-archive", StorageClass: "STANDARD", SizeBytes: 1_200_000_000_000, LastAccessedDays: 120},
		{BucketName: "company-app-assets", StorageClass: "STANDARD", SizeBytes: 25_000_000_000, LastAccessedDays: 2},
		{BucketName: "company-backups-glacier", StorageClass: "GLACIER", SizeBytes: 3_000_000_000_000, LastAccessedDays: 400},
	}
	return append([]S3Bucket(nil), fixtures...), nil
}

func (c *MockClient) ListRDSInstances(ctx context.Context) ([]RDSInstance, error) {
	fixtures := []RDSInstance{
		{InstanceID: "db-prod-primary", InstanceClass: "db.r5.large", Status: "available", AvgCPUPercent: 38.0, AvgConnections: 22.0},
		{InstanceID: "db-prod-replica-1", InstanceClass: "db.t3.medium", Status: "available", AvgCPUPercent: 4.0, AvgConnections: 1.0},
	}
	return append([]RDSInstance(nil), fixtures...), nil
}

func (c *MockClient) ListLambdaFunctions(ctx context.Context) ([]LambdaFunction, error) {
	fixtures := []LambdaFunction{
		{FunctionName: "order-processor", MemoryMB: 256, TimeoutSec: 30, AvgInvocationsPerDay: 1500, AvgDurationMs: 180},
		{FunctionName: "legacy-report-generator", MemoryMB: 1024, TimeoutSec: 60, AvgInvocationsPerDay: 0, AvgDurationMs: 0},
		{FunctionName: "image-thumbnailer", MemoryMB: 1024, TimeoutSec: 15, AvgInvocationsPerDay: 8000, AvgDurationMs: 45},
	}
	return append([]LambdaFunction(nil), fixtures...), nil
}

func (c *MockClient) ListLoadBalancers(ctx context.Context) ([]LoadBalancer, error) {
	fixtures := []LoadBalancer{
		{Name: "public-api-alb", State: "active", TotalTargetCount: 3, RequestCountPerDay: 450000},
		{Name: "orphaned-staging-alb", State: "active", TotalTargetCount: 0, RequestCountPerDay: 0},
		{Name: "internal-nlb", State: "active", TotalTargetCount: 2, RequestCountPerDay: 0},
	}
	return append([]LoadBalancer(nil), fixtures...), nil
}

func (c *MockClient) ListNATGateways(ctx context.Context) ([]NATGateway, error) {
	fixtures := []NATGateway{
		{NatGatewayID: "nat-0a1b2c3d4e5f00001", State: "available", BytesProcessedPerDay: 50 * pricing.BytesPerGB},
		{NatGatewayID: "nat-0a1b2c3d4e5f00002", State: "available", BytesProcessedPerDay: 0},
	}
	return append([]NATGateway(nil), fixtures...), nil
}

func (c *MockClient) ListElasticIPs(ctx context.Context) ([]ElasticIP, error) {
	fixtures := []ElasticIP{
		{AllocationID: "eipalloc-0a1b2c3d4e5f00001", AssociationID: "eipassoc-0a1b2c3d4e5f00001"},
		{AllocationID: "eipalloc-0a1b2c3d4e5f00002", AssociationID: ""},
	}
	return append([]ElasticIP(nil), fixtures...), nil
}

func (c *MockClient) GetCostData(ctx context.Context) (CostData, error) {
	byService := map[string]float64{
		"EC2": 842.15,
		"RDS": 612.40,
		"S3":  210.82,
		"EBS": 176.00,
	}

	var total float64
	for _, v := range byService {
		total += v
	}

	return CostData{TotalMonthly: total, ByService: byService}, nil
}
