package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// LambdaCollector inventories Lambda functions.
type LambdaCollector struct{}

func (LambdaCollector) Name() string { return "Lambda" }

func (LambdaCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := lambda.NewListFunctionsPaginator(clients.Lambda, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}
		for _, fn := range page.Functions {
			out = append(out, Record{
				ResourceID: aws.ToString(fn.FunctionName),
				ARN:        aws.ToString(fn.FunctionArn),
				Service:    "Lambda",
				Type:       string(fn.Runtime),
				Name:       aws.ToString(fn.FunctionName),
				State:      string(fn.State),
				Metadata: map[string]interface{}{
					"memoryMB":   aws.ToInt32(fn.MemorySize),
					"timeoutSec": aws.ToInt32(fn.Timeout),
				},
			})
		}
	}
	return out, nil
}
