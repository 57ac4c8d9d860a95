package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"finops/internal/logger"
)

// DynamoDBCollector inventories DynamoDB tables.
type DynamoDBCollector struct{}

func (DynamoDBCollector) Name() string { return "DynamoDB" }

func (DynamoDBCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := dynamodb.NewListTablesPaginator(clients.DynamoDB, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		for _, name := range page.TableNames {
			desc, err := clients.DynamoDB.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
			if err != nil {
				logger.WarnCtx(ctx, "describe table unavailable for %s: %v", name, err)
				out = append(out, Record{ResourceID: name, Service: "DynamoDB", Type: "Table", Name: name, Metadata: map[string]interface{}{}})
				continue
			}
			out = append(out, Record{
				ResourceID: name,
				ARN:        aws.ToString(desc.Table.TableArn),
				Service:    "DynamoDB",
				Type:       "Table",
				Name:       name,
				State:      string(desc.Table.TableStatus),
				Metadata: map[string]interface{}{
					"billingMode": billingModeOf(desc.Table),
					"itemCount":   aws.ToInt64(desc.Table.ItemCount),
				},
			})
		}
	}
	return out, nil
}

func billingModeOf(t *dynamodbtypes.TableDescription) string {
	if t == nil || t.BillingModeSummary == nil {
		return "PROVISIONED"
	}
	return string(t.BillingModeSummary.BillingMode)
}
