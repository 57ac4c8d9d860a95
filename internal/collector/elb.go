package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	"finops/internal/logger"
)

// ELBCollector inventories load balancers and their target groups.
type ELBCollector struct{}

func (ELBCollector) Name() string { return "ELB" }

func (ELBCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(clients.ELB, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}
		for _, lb := range page.LoadBalancers {
			arn := aws.ToString(lb.LoadBalancerArn)
			out = append(out, Record{
				ResourceID: aws.ToString(lb.LoadBalancerName),
				ARN:        arn,
				Service:    "ELB",
				Type:       string(lb.Type),
				Name:       aws.ToString(lb.LoadBalancerName),
				State:      string(lb.State.Code),
				Metadata: map[string]interface{}{
					"scheme": string(lb.Scheme),
				},
			})

			groupsResp, err := clients.ELB.DescribeTargetGroups(ctx, &elasticloadbalancingv2.DescribeTargetGroupsInput{
				LoadBalancerArn: aws.String(arn),
			})
			if err != nil {
				logger.WarnCtx(ctx, "describe target groups unavailable for %s: %v", arn, err)
				continue
			}
			for _, tg := range groupsResp.TargetGroups {
				out = append(out, Record{
					ResourceID: aws.ToString(tg.TargetGroupName),
					ARN:        aws.ToString(tg.TargetGroupArn),
					Service:    "ELB",
					Type:       "TargetGroup",
					Name:       aws.ToString(tg.TargetGroupName),
					Metadata: map[string]interface{}{
						"protocol":          string(tg.Protocol),
						"loadBalancerArns":  tg.LoadBalancerArns,
					},
				})
			}
		}
	}
	return out, nil
}
