package collector

// NewDefaultDispatcher registers the full sixteen-collector roster in the
// dispatch order the inventory sync preserves in its merged output.
func NewDefaultDispatcher() *Dispatcher {
	return NewDispatcher(
		EC2Collector{},
		EBSCollector{},
		S3Collector{},
		RDSCollector{},
		LambdaCollector{},
		ELBCollector{},
		CloudFrontCollector{},
		VPCCollector{},
		AutoScalingCollector{},
		ElasticBeanstalkCollector{},
		DynamoDBCollector{},
		SNSCollector{},
		SQSCollector{},
		Route53Collector{},
		IAMCollector{},
		CloudFormationCollector{},
	)
}
