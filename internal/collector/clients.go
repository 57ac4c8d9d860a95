package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"finops/internal/credcache"
)

// collectorSessionName distinguishes the inventory sweep's STS session
// from the analysis path's in CloudTrail.
const collectorSessionName = "finops-collector"

// Clients bundles one per-service SDK v2 client per collector, all built
// from the same assumed-role credentials. Not shared across workspaces.
type Clients struct {
	region      string
	roleArn     string
	workspaceID string
	credCache   *credcache.Cache

	initOnce sync.Once
	initErr  error

	EC2              *ec2.Client
	S3               *s3.Client
	RDS              *rds.Client
	Lambda           *lambda.Client
	ELB              *elasticloadbalancingv2.Client
	CloudFront       *cloudfront.Client
	AutoScaling      *autoscaling.Client
	ElasticBeanstalk *elasticbeanstalk.Client
	DynamoDB         *dynamodb.Client
	SNS              *sns.Client
	SQS              *sqs.Client
	Route53          *route53.Client
	IAM              *iam.Client
	CloudFormation   *cloudformation.Client
}

// NewClients builds a lazily-initialized client bundle for one workspace.
// A nil credCache disables cross-tick credential reuse.
func NewClients(region, roleArn, workspaceID string, credCache *credcache.Cache) *Clients {
	return &Clients{region: region, roleArn: roleArn, workspaceID: workspaceID, credCache: credCache}
}

// init assumes the workspace's role once and builds every client from
// the resulting credentials provider.
func (c *Clients) init(ctx context.Context) error {
	c.initOnce.Do(func() {
		baseCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.region))
		if err != nil {
			c.initErr = fmt.Errorf("load base aws config: %w", err)
			return
		}

		stsClient := sts.NewFromConfig(baseCfg)
		var provider aws.CredentialsProvider = stscreds.NewAssumeRoleProvider(stsClient, c.roleArn, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = collectorSessionName
			o.Duration = time.Hour
		})
		if c.credCache != nil {
			provider = c.credCache.WrapProvider(c.workspaceID+":collector", provider)
		}

		cfg := baseCfg.Copy()
		cfg.Credentials = aws.NewCredentialsCache(provider)

		c.EC2 = ec2.NewFromConfig(cfg)
		c.S3 = s3.NewFromConfig(cfg)
		c.RDS = rds.NewFromConfig(cfg)
		c.Lambda = lambda.NewFromConfig(cfg)
		c.ELB = elasticloadbalancingv2.NewFromConfig(cfg)
		c.CloudFront = cloudfront.NewFromConfig(cfg)
		c.AutoScaling = autoscaling.NewFromConfig(cfg)
		c.ElasticBeanstalk = elasticbeanstalk.NewFromConfig(cfg)
		c.DynamoDB = dynamodb.NewFromConfig(cfg)
		c.SNS = sns.NewFromConfig(cfg)
		c.SQS = sqs.NewFromConfig(cfg)
		c.Route53 = route53.NewFromConfig(cfg)
		c.IAM = iam.NewFromConfig(cfg)
		c.CloudFormation = cloudformation.NewFromConfig(cfg)
	})
	return c.initErr
}
