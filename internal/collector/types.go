// Package collector produces broad, metadata-rich resource inventory
// records for every service a workspace might use. It is deliberately
// separate from internal/cloudclient: the collector answers "what
// exists", the cloud client's capability set answers "what should I
// recommend".
package collector

import "context"

// Record is one inventory entry. EstimatedMonthlyCost is left nil by
// every collector here: cost and the four services' state fields are
// the analysis path's (internal/cloudclient + internal/pricing)
// responsibility, so EC2/EBS/S3/RDS collectors only ever populate
// metadata, never cost or state (see DESIGN.md's dual-writer note).
type Record struct {
	ResourceID           string
	ARN                  string
	Service              string
	Type                 string
	Name                 string
	Tags                 map[string]string
	State                string
	EstimatedMonthlyCost *float64
	Metadata             map[string]interface{}
}

// Collector produces the full inventory for one AWS service.
type Collector interface {
	Name() string
	Collect(ctx context.Context, clients *Clients) ([]Record, error)
}
