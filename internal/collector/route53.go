package collector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// Route53Collector inventories hosted zones.
type Route53Collector struct{}

func (Route53Collector) Name() string { return "Route53" }

func (Route53Collector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	if err := clients.init(ctx); err != nil {
		return nil, err
	}

	var out []Record
	paginator := route53.NewListHostedZonesPaginator(clients.Route53, &route53.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}
		for _, z := range page.HostedZones {
			out = append(out, Record{
				ResourceID: aws.ToString(z.Id),
				Service:    "Route53",
				Type:       "HostedZone",
				Name:       aws.ToString(z.Name),
				Metadata: map[string]interface{}{
					"recordSetCount": aws.ToInt64(z.ResourceRecordSetCount),
					"private":        z.Config != nil && z.Config.PrivateZone,
				},
			})
		}
	}
	return out, nil
}
