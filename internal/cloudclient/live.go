package cloudclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"finops/internal/credcache"
	"finops/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"finops/internal/pricing"
)

// assumeRoleSessionName is the STS session name stamped on every assumed
// role, visible in the target account's CloudTrail as the caller identity.
const assumeRoleSessionName = "finops-dashboard"

// assumeRoleDuration is how long the assumed-role credentials are valid
// before the SDK's credential cache transparently refreshes them.
const assumeRoleDuration = time.Hour

// cpuMetricWindow is the fixed lookback window for CloudWatch CPU
// aggregates.
const cpuMetricWindow = 14 * 24 * time.Hour

// LiveClient is the AWS SDK v2-backed Client implementation for one
// workspace. It is not safe to share across workspaces: each holds its
// own assumed-role credentials and per-service clients.
type LiveClient struct {
	region      string
	roleArn     string
	workspaceID string
	credCache   *credcache.Cache

	initOnce sync.Once
	initErr  error

	ec2Client *ec2.Client
	cwClient  *cloudwatch.Client
	s3Client  *s3.Client
	rdsClient *rds.Client
	lambdaClient *lambda.Client
	elbClient *elasticloadbalancingv2.Client
}

// NewLiveClient constructs a client for the given region and cross-account
// role ARN. Credentials are not assumed until the first call; see init. A
// nil credCache disables cross-tick credential reuse.
func NewLiveClient(region, roleArn, workspaceID string, credCache *credcache.Cache) *LiveClient {
	return &LiveClient{region: region, roleArn: roleArn, workspaceID: workspaceID, credCache: credCache}
}

// init lazily assumes the workspace's role and builds every per-service
// client from the resulting credentials provider. Guarded by sync.Once so
// concurrent callers on the same *LiveClient block on, not repeat, the
// assume-role call.
func (c *LiveClient) init(ctx context.Context) error {
	c.initOnce.Do(func() {
		baseCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.region))
		if err != nil {
			c.initErr = fmt.Errorf("load base aws config: %w", err)
			return
		}

		stsClient := sts.NewFromConfig(baseCfg)
		var provider aws.CredentialsProvider = stscreds.NewAssumeRoleProvider(stsClient, c.roleArn, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = assumeRoleSessionName
			o.Duration = assumeRoleDuration
		})
		if c.credCache != nil {
			provider = c.credCache.WrapProvider(c.workspaceID+":dashboard", provider)
		}

		cfg := baseCfg.Copy()
		cfg.Credentials = aws.NewCredentialsCache(provider)

		c.ec2Client = ec2.NewFromConfig(cfg)
		c.cwClient = cloudwatch.NewFromConfig(cfg)
		c.s3Client = s3.NewFromConfig(cfg)
		c.rdsClient = rds.NewFromConfig(cfg)
		c.lambdaClient = lambda.NewFromConfig(cfg)
		c.elbClient = elasticloadbalancingv2.NewFromConfig(cfg)
	})
	return c.initErr
}

// TestConnection verifies the assumed role can reach EC2 in the target
// account.
func (c *LiveClient) TestConnection(ctx context.Context) error {
	if err := c.init(ctx); err != nil {
		return err
	}
	_, err := c.ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	return err
}

// ListEC2Instances exhaustively paginates DescribeInstances.
func (c *LiveClient) ListEC2Instances(ctx context.Context) ([]EC2Instance, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []EC2Instance
	paginator := ec2.NewDescribeInstancesPaginator(c.ec2Client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				out = append(out, EC2Instance{
					InstanceID:   aws.ToString(inst.InstanceId),
					InstanceType: string(inst.InstanceType),
					State:        string(inst.State.Name),
				})
			}
		}
	}
	return out, nil
}

// GetEC2CPUMetrics fetches a 14-day Average/Maximum CPUUtilization
// aggregate per instance id, one GetMetricStatistics call per instance.
func (c *LiveClient) GetEC2CPUMetrics(ctx context.Context, instanceIDs []string) ([]CPUMetric, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.Add(-cpuMetricWindow)
	periodDays := int(cpuMetricWindow.Hours() / 24)

	var out []CPUMetric
	for _, id := range instanceIDs {
		resp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
			Namespace:  aws.String("AWS/EC2"),
			MetricName: aws.String("CPUUtilization"),
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String("InstanceId"), Value: aws.String(id)},
			},
			StartTime:  aws.Time(start),
			EndTime:    aws.Time(end),
			Period:     aws.Int32(int32(cpuMetricWindow.Seconds())),
			Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage, cwtypes.StatisticMaximum},
		})
		if err != nil {
			return nil, fmt.Errorf("get metric statistics for %s: %w", id, err)
		}

		var avg, max float64
		if len(resp.Datapoints) > 0 {
			avg = aws.ToFloat64(resp.Datapoints[0].Average)
			max = aws.ToFloat64(resp.Datapoints[0].Maximum)
		}
		out = append(out, CPUMetric{
			InstanceID:    id,
			AvgCPUPercent: avg,
			MaxCPUPercent: max,
			PeriodDays:    periodDays,
		})
	}
	return out, nil
}

// ListEBSVolumes exhaustively paginates DescribeVolumes.
func (c *LiveClient) ListEBSVolumes(ctx context.Context) ([]EBSVolume, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []EBSVolume
	paginator := ec2.NewDescribeVolumesPaginator(c.ec2Client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe volumes: %w", err)
		}
		for _, v := range page.Volumes {
			out = append(out, EBSVolume{
				VolumeID:        aws.ToString(v.VolumeId),
				VolumeType:      string(v.VolumeType),
				State:           string(v.State),
				SizeGiB:         float64(aws.ToInt32(v.Size)),
				AttachmentCount: len(v.Attachments),
				CreateTime:      aws.ToTime(v.CreateTime),
			})
		}
	}
	return out, nil
}

// ListS3Buckets lists every bucket and enriches it with its size from the
// CloudWatch BucketSizeBytes storage metric. StorageClass is always
// reported as STANDARD and LastAccessedDays is always 0: neither is read
// from AWS. A size lookup failure falls back to 0 rather than failing the
// whole call, consistent with the rest of the abstraction's
// complete-or-error contract being upheld at the bucket-list level, not
// per enrichment field.
func (c *LiveClient) ListS3Buckets(ctx context.Context) ([]S3Bucket, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	resp, err := c.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	var out []S3Bucket
	for _, b := range resp.Buckets {
		name := aws.ToString(b.Name)
		sizeBytes, lastAccessedDays := c.bucketUsage(ctx, name)
		out = append(out, S3Bucket{
			BucketName:       name,
			StorageClass:     "STANDARD",
			SizeBytes:        sizeBytes,
			LastAccessedDays: lastAccessedDays,
		})
	}
	return out, nil
}

// bucketUsage reads the BucketSizeBytes CloudWatch storage metric for one
// bucket. Any failure (including buckets with no published metric yet)
// degrades to a zero size rather than propagating, per §4.4's
// enrichment-failure rule. lastAccessedDays is always returned as 0.
func (c *LiveClient) bucketUsage(ctx context.Context, bucket string) (sizeBytes int64, lastAccessedDays int) {
	end := time.Now()
	start := end.Add(-48 * time.Hour)
	resp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/S3"),
		MetricName: aws.String("BucketSizeBytes"),
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String("BucketName"), Value: aws.String(bucket)},
			{Name: aws.String("StorageType"), Value: aws.String("StandardStorage")},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(86400),
		Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage},
	})
	if err != nil || len(resp.Datapoints) == 0 {
		logger.WarnCtx(ctx, "s3 bucket usage unavailable for %s: %v", bucket, err)
		return 0, 0
	}
	return int64(aws.ToFloat64(resp.Datapoints[0].Average)), 0
}

// ListRDSInstances exhaustively paginates DescribeDBInstances.
func (c *LiveClient) ListRDSInstances(ctx context.Context) ([]RDSInstance, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []RDSInstance
	paginator := rds.NewDescribeDBInstancesPaginator(c.rdsClient, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}
		for _, db := range page.DBInstances {
			avgCPU, avgConn := c.rdsMetrics(ctx, aws.ToString(db.DBInstanceIdentifier))
			out = append(out, RDSInstance{
				InstanceID:     aws.ToString(db.DBInstanceIdentifier),
				InstanceClass:  aws.ToString(db.DBInstanceClass),
				Status:         aws.ToString(db.DBInstanceStatus),
				AvgCPUPercent:  avgCPU,
				AvgConnections: avgConn,
			})
		}
	}
	return out, nil
}

// rdsMetrics reads 14-day CPUUtilization/DatabaseConnections averages for
// one DB instance. Failures degrade to zero, matching bucketUsage's
// enrichment-failure posture.
func (c *LiveClient) rdsMetrics(ctx context.Context, dbInstanceID string) (avgCPU, avgConn float64) {
	end := time.Now()
	start := end.Add(-cpuMetricWindow)
	period := int32(cpuMetricWindow.Seconds())

	dims := []cwtypes.Dimension{{Name: aws.String("DBInstanceIdentifier"), Value: aws.String(dbInstanceID)}}

	cpuResp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/RDS"), MetricName: aws.String("CPUUtilization"),
		Dimensions: dims, StartTime: aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(period), Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage},
	})
	if err == nil && len(cpuResp.Datapoints) > 0 {
		avgCPU = aws.ToFloat64(cpuResp.Datapoints[0].Average)
	} else if err != nil {
		logger.WarnCtx(ctx, "rds cpu metric unavailable for %s: %v", dbInstanceID, err)
	}

	connResp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/RDS"), MetricName: aws.String("DatabaseConnections"),
		Dimensions: dims, StartTime: aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(period), Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage},
	})
	if err == nil && len(connResp.Datapoints) > 0 {
		avgConn = aws.ToFloat64(connResp.Datapoints[0].Average)
	} else if err != nil {
		logger.WarnCtx(ctx, "rds connections metric unavailable for %s: %v", dbInstanceID, err)
	}
	return avgCPU, avgConn
}

// ListLambdaFunctions exhaustively paginates ListFunctions and enriches
// each with its 14-day invocation/duration averages.
func (c *LiveClient) ListLambdaFunctions(ctx context.Context) ([]LambdaFunction, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []LambdaFunction
	paginator := lambda.NewListFunctionsPaginator(c.lambdaClient, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}
		for _, fn := range page.Functions {
			name := aws.ToString(fn.FunctionName)
			avgInvocations, avgDuration := c.lambdaMetrics(ctx, name)
			out = append(out, LambdaFunction{
				FunctionName:         name,
				MemoryMB:             float64(aws.ToInt32(fn.MemorySize)),
				TimeoutSec:           float64(aws.ToInt32(fn.Timeout)),
				AvgInvocationsPerDay: avgInvocations,
				AvgDurationMs:        avgDuration,
			})
		}
	}
	return out, nil
}

func (c *LiveClient) lambdaMetrics(ctx context.Context, functionName string) (avgInvocationsPerDay, avgDurationMs float64) {
	end := time.Now()
	start := end.Add(-cpuMetricWindow)
	dims := []cwtypes.Dimension{{Name: aws.String("FunctionName"), Value: aws.String(functionName)}}

	invResp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/Lambda"), MetricName: aws.String("Invocations"),
		Dimensions: dims, StartTime: aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(int32(cpuMetricWindow.Seconds())), Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err == nil && len(invResp.Datapoints) > 0 {
		periodDays := cpuMetricWindow.Hours() / 24
		avgInvocationsPerDay = aws.ToFloat64(invResp.Datapoints[0].Sum) / periodDays
	} else if err != nil {
		logger.WarnCtx(ctx, "lambda invocations metric unavailable for %s: %v", functionName, err)
	}

	durResp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/Lambda"), MetricName: aws.String("Duration"),
		Dimensions: dims, StartTime: aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(int32(cpuMetricWindow.Seconds())), Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage},
	})
	if err == nil && len(durResp.Datapoints) > 0 {
		avgDurationMs = aws.ToFloat64(durResp.Datapoints[0].Average)
	} else if err != nil {
		logger.WarnCtx(ctx, "lambda duration metric unavailable for %s: %v", functionName, err)
	}
	return avgInvocationsPerDay, avgDurationMs
}

// ListLoadBalancers exhaustively paginates DescribeLoadBalancers and
// resolves each balancer's target health count and request volume.
func (c *LiveClient) ListLoadBalancers(ctx context.Context) ([]LoadBalancer, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []LoadBalancer
	paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(c.elbClient, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}
		for _, lb := range page.LoadBalancers {
			arn := aws.ToString(lb.LoadBalancerArn)
			targetCount := c.targetCount(ctx, arn)
			requestsPerDay := c.lbRequestCount(ctx, aws.ToString(lb.LoadBalancerName))
			out = append(out, LoadBalancer{
				Name:               aws.ToString(lb.LoadBalancerName),
				State:              string(lb.State.Code),
				TotalTargetCount:   targetCount,
				RequestCountPerDay: requestsPerDay,
			})
		}
	}
	return out, nil
}

func (c *LiveClient) targetCount(ctx context.Context, lbArn string) int {
	groupsResp, err := c.elbClient.DescribeTargetGroups(ctx, &elasticloadbalancingv2.DescribeTargetGroupsInput{
		LoadBalancerArn: aws.String(lbArn),
	})
	if err != nil {
		logger.WarnCtx(ctx, "describe target groups unavailable for %s: %v", lbArn, err)
		return 0
	}

	total := 0
	for _, tg := range groupsResp.TargetGroups {
		healthResp, err := c.elbClient.DescribeTargetHealth(ctx, &elasticloadbalancingv2.DescribeTargetHealthInput{
			TargetGroupArn: tg.TargetGroupArn,
		})
		if err != nil {
			logger.WarnCtx(ctx, "describe target health unavailable for %s: %v", aws.ToString(tg.TargetGroupArn), err)
			continue
		}
		total += len(healthResp.TargetHealthDescriptions)
	}
	return total
}

func (c *LiveClient) lbRequestCount(ctx context.Context, lbName string) float64 {
	end := time.Now()
	start := end.Add(-cpuMetricWindow)
	resp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/ApplicationELB"), MetricName: aws.String("RequestCount"),
		Dimensions: []cwtypes.Dimension{{Name: aws.String("LoadBalancer"), Value: aws.String(lbName)}},
		StartTime:  aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(int32(cpuMetricWindow.Seconds())), Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err != nil || len(resp.Datapoints) == 0 {
		return 0
	}
	periodDays := cpuMetricWindow.Hours() / 24
	return aws.ToFloat64(resp.Datapoints[0].Sum) / periodDays
}

// ListNATGateways exhaustively paginates DescribeNatGateways and
// enriches each with its 14-day average daily byte throughput.
func (c *LiveClient) ListNATGateways(ctx context.Context) ([]NATGateway, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	var out []NATGateway
	paginator := ec2.NewDescribeNatGatewaysPaginator(c.ec2Client, &ec2.DescribeNatGatewaysInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe nat gateways: %w", err)
		}
		for _, gw := range page.NatGateways {
			id := aws.ToString(gw.NatGatewayId)
			out = append(out, NATGateway{
				NatGatewayID:         id,
				State:                string(gw.State),
				BytesProcessedPerDay: c.natThroughput(ctx, id),
			})
		}
	}
	return out, nil
}

func (c *LiveClient) natThroughput(ctx context.Context, natGatewayID string) float64 {
	end := time.Now()
	start := end.Add(-cpuMetricWindow)
	resp, err := c.cwClient.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace: aws.String("AWS/NATGateway"), MetricName: aws.String("BytesOutToDestination"),
		Dimensions: []cwtypes.Dimension{{Name: aws.String("NatGatewayId"), Value: aws.String(natGatewayID)}},
		StartTime:  aws.Time(start), EndTime: aws.Time(end),
		Period: aws.Int32(int32(cpuMetricWindow.Seconds())), Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err != nil || len(resp.Datapoints) == 0 {
		return 0
	}
	periodDays := cpuMetricWindow.Hours() / 24
	return aws.ToFloat64(resp.Datapoints[0].Sum) / periodDays
}

// ListElasticIPs describes every allocated Elastic IP in the account.
// EC2 does not paginate DescribeAddresses.
func (c *LiveClient) ListElasticIPs(ctx context.Context) ([]ElasticIP, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}

	resp, err := c.ec2Client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe addresses: %w", err)
	}

	var out []ElasticIP
	for _, addr := range resp.Addresses {
		out = append(out, ElasticIP{
			AllocationID:  aws.ToString(addr.AllocationId),
			AssociationID: aws.ToString(addr.AssociationId),
		})
	}
	return out, nil
}

// GetCostData estimates the workspace's current-month spend from its own
// compute inventory using the same pricing tables the persistence path
// uses. A production deployment would instead read Cost Explorer's
// GetCostAndUsage for ground-truth billing; wiring that in only requires
// adding a costexplorer.Client alongside the other per-service clients in
// init.
func (c *LiveClient) GetCostData(ctx context.Context) (CostData, error) {
	if err := c.init(ctx); err != nil {
		return CostData{}, err
	}

	byService := map[string]float64{}

	instances, err := c.ListEC2Instances(ctx)
	if err != nil {
		return CostData{}, fmt.Errorf("cost data ec2: %w", err)
	}
	for _, inst := range instances {
		byService["EC2"] += pricing.EC2MonthlyCost(inst.InstanceType, inst.State)
	}

	dbInstances, err := c.ListRDSInstances(ctx)
	if err != nil {
		return CostData{}, fmt.Errorf("cost data rds: %w", err)
	}
	for _, db := range dbInstances {
		byService["RDS"] += pricing.RDSMonthlyCost(db.InstanceClass, db.Status)
	}

	var total float64
	for _, v := range byService {
		total += v
	}
	return CostData{TotalMonthly: total, ByService: byService}, nil
}
