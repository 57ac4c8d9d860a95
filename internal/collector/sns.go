package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSCollector inventories SNS topics.
type SNSCollector struct{}

func (SNSCollector) Name() string { return "SNS" }

func (SNSCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := sns.NewListTopicsPaginator(clients.SNS, &sns.ListTopicsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list topics: %w", err)
		}
		for _, t := range page.Topics {
			arn := aws.ToString(t.TopicArn)
			out = append(out, Record{
				ResourceID: arn,
				ARN:        arn,
				Service:    "SNS",
				Type:       "Topic",
				Metadata:   map[string]interface{}{},
			})
		}
	}
	return out, nil
}
