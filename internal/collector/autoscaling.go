package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
)

// AutoScalingCollector inventories Auto Scaling groups.
type AutoScalingCollector struct{}

func (AutoScalingCollector) Name() string { return "AutoScaling" }

func (AutoScalingCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(clients.AutoScaling, &autoscaling.DescribeAutoScalingGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe auto scaling groups: %w", err)
		}
		for _, g := range page.AutoScalingGroups {
			out = append(out, Record{
				ResourceID: aws.ToString(g.AutoScalingGroupName),
				ARN:        aws.ToString(g.AutoScalingGroupARN),
				Service:    "AutoScaling",
				Type:       "AutoScalingGroup",
				Name:       aws.ToString(g.AutoScalingGroupName),
				Metadata: map[string]interface{}{
					"desiredCapacity": aws.ToInt32(g.DesiredCapacity),
					"minSize":         aws.ToInt32(g.MinSize),
					"maxSize":         aws.ToInt32(g.MaxSize),
					"instanceCount":   len(g.Instances),
				},
			})
		}
	}
	return out, nil
}
