package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
)

// ElasticBeanstalkCollector inventories Elastic Beanstalk applications
// and their environments.
type ElasticBeanstalkCollector struct{}

func (ElasticBeanstalkCollector) Name() string { return "ElasticBeanstalk" }

func (ElasticBeanstalkCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record

	appsResp, err := clients.ElasticBeanstalk.DescribeApplications(ctx, &elasticbeanstalk.DescribeApplicationsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe applications: %w", err)
	}
	for _, app := range appsResp.Applications {
		out = append(out, Record{
			ResourceID: aws.ToString(app.ApplicationName),
			ARN:        aws.ToString(app.ApplicationArn),
			Service:    "ElasticBeanstalk",
			Type:       "Application",
			Name:       aws.ToString(app.ApplicationName),
			Metadata:   map[string]interface{}{},
		})
	}

	envsResp, err := clients.ElasticBeanstalk.DescribeEnvironments(ctx, &elasticbeanstalk.DescribeEnvironmentsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe environments: %w", err)
	}
	for _, env := range envsResp.Environments {
		out = append(out, Record{
			ResourceID: aws.ToString(env.EnvironmentId),
			ARN:        aws.ToString(env.EnvironmentArn),
			Service:    "ElasticBeanstalk",
			Type:       "Environment",
			Name:       aws.ToString(env.EnvironmentName),
			State:      string(env.Status),
			Metadata: map[string]interface{}{
				"applicationName": aws.ToString(env.ApplicationName),
				"health":          string(env.Health),
			},
		})
	}

	return out, nil
}
