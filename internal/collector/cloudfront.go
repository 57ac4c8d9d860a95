package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// CloudFrontCollector inventories CloudFront distributions.
type CloudFrontCollector struct{}

func (CloudFrontCollector) Name() string { return "CloudFront" }

func (CloudFrontCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := cloudfront.NewListDistributionsPaginator(clients.CloudFront, &cloudfront.ListDistributionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list distributions: %w", err)
		}
		if page.DistributionList == nil {
			continue
		}
		for _, d := range page.DistributionList.Items {
			out = append(out, Record{
				ResourceID: aws.ToString(d.Id),
				ARN:        aws.ToString(d.ARN),
				Service:    "CloudFront",
				Type:       "Distribution",
				Name:       aws.ToString(d.DomainName),
				State:      aws.ToString(d.Status),
				Metadata: map[string]interface{}{
					"enabled":    aws.ToBool(d.Enabled),
					"priceClass": string(d.PriceClass),
				},
			})
		}
	}
	return out, nil
}
