package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2Collector inventories EC2 instances. State and cost are left to the
// analysis path (internal/cloudclient + internal/pricing); this collector
// only ever writes metadata, to avoid two writers disagreeing on the same
// field.
type EC2Collector struct{}

func (EC2Collector) Name() string { return "EC2" }

func (EC2Collector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := ec2.NewDescribeInstancesPaginator(clients.EC2, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				tags := map[string]string{}
				name := ""
				for _, t := range inst.Tags {
					tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
					if aws.ToString(t.Key) == "Name" {
						name = aws.ToString(t.Value)
					}
				}
				out = append(out, Record{
					ResourceID: aws.ToString(inst.InstanceId),
					Service:    "EC2",
					Type:       string(inst.InstanceType),
					Name:       name,
					Tags:       tags,
					Metadata: map[string]interface{}{
						"state":            string(inst.State.Name),
						"availabilityZone": aws.ToString(inst.Placement.AvailabilityZone),
					},
				})
			}
		}
	}
	return out, nil
}
