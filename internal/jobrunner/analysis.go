package jobrunner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"finops/internal/analyzer"
	"finops/internal/cloudclient"
)

// analysisInputs holds every list the eight analyzers need, fetched
// concurrently from the workspace's cloud client.
type analysisInputs struct {
	ec2Instances []cloudclient.EC2Instance
	ebsVolumes   []cloudclient.EBSVolume
	s3Buckets    []cloudclient.S3Bucket
	rdsInstances []cloudclient.RDSInstance
	lambdaFns    []cloudclient.LambdaFunction
	loadBalancers []cloudclient.LoadBalancer
	natGateways  []cloudclient.NATGateway
	elasticIPs   []cloudclient.ElasticIP
	cpuMetrics   []cloudclient.CPUMetric
}

// fetchAnalysisInputs runs the eight capability-set list calls
// concurrently, then fetches CPU metrics once the EC2 id slice is known.
// A single list call's failure aborts the analysis path for this run
// (analysis, unlike the inventory sweep, has no per-service fallback);
// the caller treats that as the run's top-level failure.
func fetchAnalysisInputs(ctx context.Context, client cloudclient.Client) (analysisInputs, error) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		in   analysisInputs
	)

	fetch := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	fetch(func() (err error) { in.ec2Instances, err = client.ListEC2Instances(ctx); return })
	fetch(func() (err error) { in.ebsVolumes, err = client.ListEBSVolumes(ctx); return })
	fetch(func() (err error) { in.s3Buckets, err = client.ListS3Buckets(ctx); return })
	fetch(func() (err error) { in.rdsInstances, err = client.ListRDSInstances(ctx); return })
	fetch(func() (err error) { in.lambdaFns, err = client.ListLambdaFunctions(ctx); return })
	fetch(func() (err error) { in.loadBalancers, err = client.ListLoadBalancers(ctx); return })
	fetch(func() (err error) { in.natGateways, err = client.ListNATGateways(ctx); return })
	fetch(func() (err error) { in.elasticIPs, err = client.ListElasticIPs(ctx); return })
	wg.Wait()

	if len(errs) > 0 {
		return analysisInputs{}, fmt.Errorf("fetch analysis inputs: %w", errs[0])
	}

	instanceIDs := make([]string, len(in.ec2Instances))
	for i, inst := range in.ec2Instances {
		instanceIDs[i] = inst.InstanceID
	}

	cpuMetrics, err := client.GetEC2CPUMetrics(ctx, instanceIDs)
	if err != nil {
		return analysisInputs{}, fmt.Errorf("get ec2 cpu metrics: %w", err)
	}
	in.cpuMetrics = cpuMetrics

	return in, nil
}

// runAnalyzers maps the raw capability-set lists into the analyzer
// package's descriptor types and runs all eight heuristics, in the
// order the heuristic table lists them.
func runAnalyzers(in analysisInputs, now time.Time) []analyzer.Recommendation {
	cpuByID := make(map[string]cloudclient.CPUMetric, len(in.cpuMetrics))
	for _, m := range in.cpuMetrics {
		cpuByID[m.InstanceID] = m
	}

	ec2Usages := make([]analyzer.EC2Usage, 0, len(in.ec2Instances))
	for _, inst := range in.ec2Instances {
		m := cpuByID[inst.InstanceID]
		ec2Usages = append(ec2Usages, analyzer.EC2Usage{
			InstanceID:    inst.InstanceID,
			InstanceType:  inst.InstanceType,
			State:         inst.State,
			AvgCPUPercent: m.AvgCPUPercent,
			PeriodDays:    m.PeriodDays,
		})
	}

	ebsVolumes := make([]analyzer.EBSVolume, 0, len(in.ebsVolumes))
	for _, v := range in.ebsVolumes {
		ebsVolumes = append(ebsVolumes, analyzer.EBSVolume{
			VolumeID:        v.VolumeID,
			VolumeType:      v.VolumeType,
			State:           v.State,
			SizeGiB:         v.SizeGiB,
			AttachmentCount: v.AttachmentCount,
			CreateTime:      v.CreateTime,
		})
	}

	s3Objects := make([]analyzer.S3Object, 0, len(in.s3Buckets))
	for _, b := range in.s3Buckets {
		s3Objects = append(s3Objects, analyzer.S3Object{
			BucketName:       b.BucketName,
			StorageClass:     b.StorageClass,
			SizeBytes:        b.SizeBytes,
			LastAccessedDays: b.LastAccessedDays,
		})
	}

	rdsUsages := make([]analyzer.RDSUsage, 0, len(in.rdsInstances))
	for _, db := range in.rdsInstances {
		rdsUsages = append(rdsUsages, analyzer.RDSUsage{
			InstanceID:     db.InstanceID,
			InstanceClass:  db.InstanceClass,
			Status:         db.Status,
			AvgCPUPercent:  db.AvgCPUPercent,
			AvgConnections: db.AvgConnections,
		})
	}

	lambdaFns := make([]analyzer.LambdaFunction, 0, len(in.lambdaFns))
	for _, f := range in.lambdaFns {
		lambdaFns = append(lambdaFns, analyzer.LambdaFunction{
			FunctionName:         f.FunctionName,
			MemoryMB:             f.MemoryMB,
			TimeoutSec:           f.TimeoutSec,
			AvgInvocationsPerDay: f.AvgInvocationsPerDay,
			AvgDurationMs:        f.AvgDurationMs,
		})
	}

	loadBalancers := make([]analyzer.LoadBalancer, 0, len(in.loadBalancers))
	for _, lb := range in.loadBalancers {
		loadBalancers = append(loadBalancers, analyzer.LoadBalancer{
			Name:               lb.Name,
			State:              lb.State,
			TotalTargetCount:   lb.TotalTargetCount,
			RequestCountPerDay: lb.RequestCountPerDay,
		})
	}

	elasticIPs := make([]analyzer.ElasticIP, 0, len(in.elasticIPs))
	for _, eip := range in.elasticIPs {
		elasticIPs = append(elasticIPs, analyzer.ElasticIP{
			AllocationID:  eip.AllocationID,
			AssociationID: eip.AssociationID,
		})
	}

	natGateways := make([]analyzer.NATGateway, 0, len(in.natGateways))
	for _, gw := range in.natGateways {
		natGateways = append(natGateways, analyzer.NATGateway{
			NatGatewayID:         gw.NatGatewayID,
			State:                gw.State,
			BytesProcessedPerDay: gw.BytesProcessedPerDay,
		})
	}

	var recs []analyzer.Recommendation
	recs = append(recs, analyzer.EC2Downsize(ec2Usages)...)
	recs = append(recs, analyzer.EBSOrphan(ebsVolumes, now)...)
	recs = append(recs, analyzer.S3Lifecycle(s3Objects)...)
	recs = append(recs, analyzer.RDSDownsize(rdsUsages)...)
	recs = append(recs, analyzer.LambdaUnused(lambdaFns)...)
	recs = append(recs, analyzer.LambdaOversized(lambdaFns)...)
	recs = append(recs, analyzer.ELBNoTargets(loadBalancers)...)
	recs = append(recs, analyzer.ELBNoTraffic(loadBalancers)...)
	recs = append(recs, analyzer.EIPUnassociated(elasticIPs)...)
	recs = append(recs, analyzer.NATIdle(natGateways)...)
	return recs
}
