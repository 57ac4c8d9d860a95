package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"finops/internal/logger"
)

// SQSCollector inventories SQS queues. Per-queue attribute fetch
// failures fall back to an empty metadata bag rather than dropping the
// queue's record.
type SQSCollector struct{}

func (SQSCollector) Name() string { return "SQS" }

func (SQSCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := sqs.NewListQueuesPaginator(clients.SQS, &sqs.ListQueuesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list queues: %w", err)
		}
		for _, url := range page.QueueUrls {
			metadata := map[string]interface{}{}
			attrsResp, err := clients.SQS.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
				QueueUrl:       aws.String(url),
				AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameApproximateNumberOfMessages},
			})
			if err != nil {
				logger.WarnCtx(ctx, "get queue attributes unavailable for %s: %v", url, err)
			} else {
				for k, v := range attrsResp.Attributes {
					metadata[k] = v
				}
			}

			out = append(out, Record{
				ResourceID: url,
				Service:    "SQS",
				Type:       "Queue",
				Metadata:   metadata,
			})
		}
	}
	return out, nil
}
