package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EBSCollector inventories EBS volumes. Cost is left to the analysis
// path; see EC2Collector's doc comment.
type EBSCollector struct{}

func (EBSCollector) Name() string { return "EBS" }

func (EBSCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := ec2.NewDescribeVolumesPaginator(clients.EC2, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe volumes: %w", err)
		}
		for _, v := range page.Volumes {
			tags := map[string]string{}
			for _, t := range v.Tags {
				tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
			}
			out = append(out, Record{
				ResourceID: aws.ToString(v.VolumeId),
				Service:    "EBS",
				Type:       string(v.VolumeType),
				Tags:       tags,
				Metadata: map[string]interface{}{
					"state":           string(v.State),
					"sizeGiB":         aws.ToInt32(v.Size),
					"attachmentCount": len(v.Attachments),
					"createTime":      aws.ToTime(v.CreateTime),
				},
			})
		}
	}
	return out, nil
}
