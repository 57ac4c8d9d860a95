package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"finops/internal/logger"
)

// S3Collector inventories S3 buckets. Cost is left to the analysis path;
// see EC2Collector's doc comment. Per-bucket location lookup failures
// fall back to an empty region rather than failing the bucket's record.
type S3Collector struct{}

func (S3Collector) Name() string { return "S3" }

func (S3Collector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	resp, err := clients.S3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	var out []Record
	for _, b := range resp.Buckets {
		name := aws.ToString(b.Name)
		region := ""
		locResp, err := clients.S3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(name)})
		if err != nil {
			logger.WarnCtx(ctx, "s3 bucket location unavailable for %s: %v", name, err)
		} else {
			region = string(locResp.LocationConstraint)
		}

		out = append(out, Record{
			ResourceID: name,
			Service:    "S3",
			Name:       name,
			Metadata: map[string]interface{}{
				"region":       region,
				"creationDate": aws.ToTime(b.CreationDate),
			},
		})
	}
	return out, nil
}
