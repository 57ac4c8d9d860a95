package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// RDSCollector inventories RDS instances. Cost is left to the analysis
// path; see EC2Collector's doc comment.
type RDSCollector struct{}

func (RDSCollector) Name() string { return "RDS" }

func (RDSCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := rds.NewDescribeDBInstancesPaginator(clients.RDS, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}
		for _, db := range page.DBInstances {
			tags := map[string]string{}
			for _, t := range db.TagList {
				tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
			}
			out = append(out, Record{
				ResourceID: aws.ToString(db.DBInstanceIdentifier),
				ARN:        aws.ToString(db.DBInstanceArn),
				Service:    "RDS",
				Type:       aws.ToString(db.DBInstanceClass),
				Tags:       tags,
				Metadata: map[string]interface{}{
					"status":       aws.ToString(db.DBInstanceStatus),
					"engine":       aws.ToString(db.Engine),
					"allocatedGiB": aws.ToInt32(db.AllocatedStorage),
				},
			})
		}
	}
	return out, nil
}
