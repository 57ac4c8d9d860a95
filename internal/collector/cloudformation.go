package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// CloudFormationCollector inventories stacks, excluding ones that have
// finished deleting: DescribeStacks omits them by default, but
// ListStacks does not, so the filter below is still needed.
type CloudFormationCollector struct{}

func (CloudFormationCollector) Name() string { return "CloudFormation" }

func (CloudFormationCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := cloudformation.NewListStacksPaginator(clients.CloudFormation, &cloudformation.ListStacksInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list stacks: %w", err)
		}
		for _, s := range page.StackSummaries {
			if s.StackStatus == cfntypes.StackStatusDeleteComplete {
				continue
			}
			out = append(out, Record{
				ResourceID: aws.ToString(s.StackId),
				Service:    "CloudFormation",
				Type:       "Stack",
				Name:       aws.ToString(s.StackName),
				State:      string(s.StackStatus),
				Metadata: map[string]interface{}{
					"creationTime": aws.ToTime(s.CreationTime),
				},
			})
		}
	}
	return out, nil
}
